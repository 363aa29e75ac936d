package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	api "github.com/ensigniasec/portfolio/internal/api"
	"github.com/ensigniasec/portfolio/internal/config"
	"github.com/ensigniasec/portfolio/internal/inbox"
	"github.com/ensigniasec/portfolio/internal/layout"
	"github.com/ensigniasec/portfolio/internal/site"
	"github.com/ensigniasec/portfolio/internal/storage"
	"github.com/ensigniasec/portfolio/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Used for flags.
	configFile string
	verbose    bool
	jsonOutput bool
	width      float64
	height     float64
	listLimit  int

	v   = viper.New()
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "portfolio",
		Short: "A responsive designer portfolio you can browse from the terminal.",
		Long: `portfolio renders a single-page designer portfolio (project gallery, about section and contact form) ` +
			`that adapts to the size of your terminal, and ships a small inbox service that receives contact submissions.`,
		PersistentPreRunE: loadConfig,
		RunE:              runView,
		SilenceUsage:      true,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Optional: path to a portfolio.yaml config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	flags.String("content", "", "Optional: site content YAML replacing the built-in content")
	flags.String("endpoint", "", "Optional: contact endpoint URL overriding the one in site content")
	flags.String("log-file", "", "Optional: write logs here while the viewer is running")
	flags.Float64("cell-width", 0, "Pixel width of one terminal cell")
	flags.Float64("cell-height", 0, "Pixel height of one terminal cell")
	bindFlag(config.KeyContent, "content")
	bindFlag(config.KeyEndpoint, "endpoint")
	bindFlag(config.KeyLogFile, "log-file")
	bindFlag(config.KeyCellWidth, "cell-width")
	bindFlag(config.KeyCellHeight, "cell-height")

	layoutCmd.Flags().Float64Var(&width, "width", 0, "Viewport width in pixels")
	layoutCmd.Flags().Float64Var(&height, "height", 0, "Viewport height in pixels (ignored by the layout)")
	layoutCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the scale in JSON format")
	_ = layoutCmd.MarkFlagRequired("width")

	inboxServeCmd.Flags().String("addr", "", "Listen address")
	inboxServeCmd.Flags().String("token", "", "Bearer token for the listing endpoints")
	inboxServeCmd.Flags().String("allow-origin", "", "CORS origin allowed to post")
	inboxCmd.PersistentFlags().String("db", "", "Path to the inbox SQLite database")
	bindFlagSet(inboxServeCmd, config.KeyInboxAddr, "addr")
	bindFlagSet(inboxServeCmd, config.KeyInboxToken, "token")
	bindFlagSet(inboxServeCmd, config.KeyInboxOrigin, "allow-origin")
	if err := v.BindPFlag(config.KeyInboxDB, inboxCmd.PersistentFlags().Lookup("db")); err != nil {
		logrus.Fatal(err)
	}

	inboxListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of submissions to list")
	inboxListCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output submissions in JSON format")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(inboxCmd)
	inboxCmd.AddCommand(inboxServeCmd)
	inboxCmd.AddCommand(inboxListCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = api.BuildVersion
	rootCmd.Annotations = map[string]string{"commit": api.BuildCommit, "date": api.BuildDate}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func bindFlag(key, name string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		logrus.Fatal(err)
	}
}

func bindFlagSet(cmd *cobra.Command, key, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		logrus.Fatal(err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

func loadConfig(_ *cobra.Command, _ []string) error {
	config.LoadDotEnv()
	c, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	cfg = c
	logrus.SetLevel(cfg.Level())
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func loadContent() (site.Content, error) {
	if cfg.Content == "" {
		return site.Default(), nil
	}
	return site.Load(cfg.Content)
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the portfolio in the terminal. [Default]",
	Long:  "Open the interactive portfolio. Use the mouse or 1/2/3 to move between sections, tab to fill in the contact form.",
	RunE:  runView,
}

func runView(cmd *cobra.Command, _ []string) error {
	content, err := loadContent()
	if err != nil {
		return err
	}
	if cfg.Endpoint != "" {
		content.Endpoint = cfg.Endpoint
	}

	var submitter api.ContactSubmitter
	if content.Endpoint != "" {
		cl, err := api.NewClient(content.Endpoint, api.WithTimeout(cfg.SubmitTimeout))
		if err != nil {
			return err
		}
		submitter = cl
	} else {
		logrus.Warn("no contact endpoint configured; submissions will be dropped")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tui.Run(ctx, tui.Options{
		Content:       content,
		Submitter:     submitter,
		CellWidth:     cfg.CellWidth,
		CellHeight:    cfg.CellHeight,
		SubmitTimeout: cfg.SubmitTimeout,
		LogFile:       cfg.LogFile,
	})
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the device class and spacing tiers for a viewport size",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printScale(cmd.OutOrStdout(), layout.NewScale(width, height), jsonOutput)
	},
}

func printScale(w io.Writer, sc layout.Scale, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sc)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "device\t%s\n", sc.Device)
	fmt.Fprintf(tw, "width\t%.0f\n", sc.Width)
	fmt.Fprintf(tw, "columns\t%d\n", sc.Columns)
	fmt.Fprintf(tw, "tile\t%.2f\n", sc.Tile)
	fmt.Fprintf(tw, "padding\txs %.2f\tsm %.2f\tmd %.2f\tlg %.2f\txl %.2f\txxl %.2f\n",
		sc.Pad.XS, sc.Pad.SM, sc.Pad.MD, sc.Pad.LG, sc.Pad.XL, sc.Pad.XXL)
	fmt.Fprintf(tw, "font\tsm %.2f\tmd %.2f\tlg %.2f\txl %.2f\txxl %.2f\n",
		sc.Font.SM, sc.Font.MD, sc.Font.LG, sc.Font.XL, sc.Font.XXL)
	return tw.Flush()
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Receive and read contact form submissions",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var inboxServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the contact endpoint and store submissions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := storage.Open(cfg.Inbox.DB)
		if err != nil {
			return fmt.Errorf("unable to open inbox storage: %w", err)
		}
		defer st.Close()

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := inbox.New(st, inbox.WithToken(cfg.Inbox.Token), inbox.WithAllowOrigin(cfg.Inbox.AllowOrigin))
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		logrus.WithField("db", st.Path).Debug("inbox storage opened")
		return srv.ListenAndServe(ctx, cfg.Inbox.Addr)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored submissions, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := storage.Open(cfg.Inbox.DB)
		if err != nil {
			return fmt.Errorf("unable to open inbox storage: %w", err)
		}
		defer st.Close()
		subs, err := st.List(cmd.Context(), listLimit)
		if err != nil {
			return err
		}
		return printSubmissions(cmd.OutOrStdout(), subs, jsonOutput)
	},
}

func printSubmissions(w io.Writer, subs []storage.Submission, asJSON bool) error {
	if asJSON {
		if subs == nil {
			subs = []storage.Submission{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(subs)
	}
	if len(subs) == 0 {
		_, err := fmt.Fprintln(w, "No submissions yet")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tMESSAGE")
	for _, s := range subs {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n",
			s.ReceivedAt.Local().Format("2006-01-02 15:04"), s.FirstName, s.LastName, s.EmailAddress, firstLine(s.EmailMessage))
	}
	return tw.Flush()
}

func firstLine(s string) string {
	const maxLen = 60
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	if r := []rune(s); len(r) > maxLen {
		return string(r[:maxLen-1]) + "…"
	}
	return s
}
