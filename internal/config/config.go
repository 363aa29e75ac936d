// Package config resolves runtime settings from flags, environment, .env and an optional YAML file.
//
// Precedence, highest first: flags, PORTFOLIO_* environment variables (including those
// loaded from .env), the config file, then defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ensigniasec/portfolio/internal/validate"
)

// EnvPrefix prefixes every environment variable, e.g. PORTFOLIO_INBOX_TOKEN.
const EnvPrefix = "PORTFOLIO"

// Keys shared with cobra flag bindings.
const (
	KeyEndpoint      = "endpoint"
	KeyContent       = "content"
	KeyCellWidth     = "cell_width"
	KeyCellHeight    = "cell_height"
	KeyLogLevel      = "log_level"
	KeyLogFile       = "log_file"
	KeySubmitTimeout = "submit_timeout"
	KeyInboxAddr     = "inbox.addr"
	KeyInboxDB       = "inbox.db"
	KeyInboxToken    = "inbox.token"
	KeyInboxOrigin   = "inbox.allow_origin"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Endpoint overrides the contact endpoint from site content when set.
	Endpoint      string        `mapstructure:"endpoint" validate:"omitempty,url"`
	Content       string        `mapstructure:"content"`
	CellWidth     float64       `mapstructure:"cell_width" validate:"gt=0"`
	CellHeight    float64       `mapstructure:"cell_height" validate:"gt=0"`
	LogLevel      string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFile       string        `mapstructure:"log_file"`
	SubmitTimeout time.Duration `mapstructure:"submit_timeout" validate:"gt=0"`
	Inbox         Inbox         `mapstructure:"inbox"`
}

// Inbox configures the submission receiver.
type Inbox struct {
	Addr        string `mapstructure:"addr" validate:"required"`
	DB          string `mapstructure:"db" validate:"required"`
	Token       string `mapstructure:"token"`
	AllowOrigin string `mapstructure:"allow_origin"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCellWidth, 8.0)
	v.SetDefault(KeyCellHeight, 16.0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySubmitTimeout, 10*time.Second)
	v.SetDefault(KeyInboxAddr, ":8080")
	v.SetDefault(KeyInboxDB, "~/.local/share/portfolio/inbox.db")
}

// LoadDotEnv loads .env from the working directory if present. Existing variables win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("ignoring .env: %v", err)
	}
}

// Load resolves the configuration held by v, reading configFile when non-empty.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows; bind the optional ones explicitly.
	for _, k := range []string{KeyEndpoint, KeyContent, KeyLogFile, KeyInboxToken, KeyInboxOrigin} {
		_ = v.BindEnv(k)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
		logrus.Debug("Loaded config file: ", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Level parses the configured log level.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
