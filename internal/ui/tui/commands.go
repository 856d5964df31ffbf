package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdRunDemo runs the demo off the UI goroutine. ctx is cancelled when the user backs out.
func cmdRunDemo(ctx context.Context, deps Deps, name string) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return func() tea.Msg {
		if deps.Runner == nil {
			return demoDoneMsg{err: errors.New("runner is nil")}
		}

		log.Debug("tui.run.start", "demo", name)
		report, id, err := deps.Runner.Execute(ctx, name)
		if err != nil {
			log.Warn("tui.run.failed", "demo", name, "error", err)
		}
		return demoDoneMsg{report: report, id: id, err: err}
	}
}
