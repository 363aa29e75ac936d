package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Run starts the Bubble Tea program and blocks until it exits or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	opts.Dark = opts.Dark || lipgloss.HasDarkBackground()

	// Redirect logs during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	var out io.Writer = io.Discard
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logrus.SetOutput(out)
	defer logrus.SetOutput(prevOut)

	p := tea.NewProgram(
		NewModel(ctx, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	logrus.WithField("endpoint", opts.Content.Endpoint).Debug("starting viewer")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
