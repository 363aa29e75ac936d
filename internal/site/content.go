// Package site holds the static content and palette of the portfolio page.
package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/portfolio/internal/validate"
)

//go:embed content.yaml
var defaultContent []byte

// ErrDuplicateProject is returned when a project id appears twice.
var ErrDuplicateProject = errors.New("duplicate project id")

// Content is everything the page displays that is not UI state.
type Content struct {
	Name     string    `yaml:"name" validate:"required"`
	Title    string    `yaml:"title"`
	Bio      string    `yaml:"bio" validate:"required"`
	Endpoint string    `yaml:"endpoint" validate:"required,url"`
	Assets   Assets    `yaml:"assets"`
	Projects []Project `yaml:"projects" validate:"required,dive"`
	Contacts []Link    `yaml:"contacts" validate:"dive"`
	Palette  Palette   `yaml:"palette"`
}

// Assets are relative URLs served by whoever hosts the page.
type Assets struct {
	Headshot string `yaml:"headshot"`
	Resume   string `yaml:"resume"`
}

// Project is one gallery tile. ID must name a known tile.
type Project struct {
	ID          string `yaml:"id" validate:"required,oneof=roco honeysuckle luna dailyui contrarygarden blank"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url" validate:"omitempty,url"`
}

// Link is an external target shown in the contact section.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// Palette colors are "#rrggbb" or ANSI indexes.
type Palette struct {
	Background string `yaml:"background" validate:"required,hexcolor_or_ansi"`
	Text       string `yaml:"text" validate:"required,hexcolor_or_ansi"`
	Muted      string `yaml:"muted" validate:"required,hexcolor_or_ansi"`
	Accent     string `yaml:"accent" validate:"required,hexcolor_or_ansi"`
	Highlight  string `yaml:"highlight" validate:"required,hexcolor_or_ansi"`
	Overlay    string `yaml:"overlay" validate:"required,hexcolor_or_ansi"`
	Error      string `yaml:"error" validate:"required,hexcolor_or_ansi"`
	Success    string `yaml:"success" validate:"required,hexcolor_or_ansi"`
}

// Default returns the embedded content.
func Default() Content {
	c, err := Decode(bytes.NewReader(defaultContent))
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return c
}

// Load reads content from path, or returns Default when path is empty.
func Load(path string) (Content, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Content{}, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses and validates a YAML content document.
func Decode(r io.Reader) (Content, error) {
	var c Content
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return Content{}, fmt.Errorf("validate content: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Projects))
	for _, p := range c.Projects {
		if _, ok := seen[p.ID]; ok {
			return Content{}, fmt.Errorf("%w: %s", ErrDuplicateProject, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return c, nil
}

// Project returns the project with id, if present.
func (c Content) Project(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
