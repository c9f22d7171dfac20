package tui

import (
	"context"
	"fmt"
	"io"

	"exoplayerlcevc/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

// RunFunc is the work rendered by Run. It must report progress through notify.
type RunFunc func(ctx context.Context, notify pipeline.Notifier) error

// Run renders fn's progress on out until fn returns, and returns fn's error.
// Canceling from the keyboard cancels the context passed to fn.
func Run(ctx context.Context, title string, out io.Writer, fn RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(title, cancel), tea.WithOutput(out))

	result := make(chan error, 1)
	go func() {
		err := fn(ctx, func(ev pipeline.Event) { p.Send(eventMsg(ev)) })
		result <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-result
		return fmt.Errorf("run progress view: %w", err)
	}
	return <-result
}
