package tui

import (
	"context"

	"exoplayerlcevc/internal/pipeline"

	"github.com/charmbracelet/bubbles/spinner"
)

type stepLine struct {
	name   string
	detail string
	state  pipeline.State
	err    error
}

type model struct {
	title string

	spin    spinner.Model
	steps   []stepLine
	current string

	canceling bool
	cancel    context.CancelFunc

	done bool
	err  error

	width  int
	height int
}

func newModel(title string, cancel context.CancelFunc) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		title:  title,
		spin:   sp,
		cancel: cancel,
	}
}

func (m *model) record(ev pipeline.Event) {
	switch ev.State {
	case pipeline.Started:
		m.current = ev.Step
	case pipeline.Done, pipeline.Failed:
		m.current = ""
		m.steps = append(m.steps, stepLine{
			name:   ev.Step,
			detail: ev.Detail,
			state:  ev.State,
			err:    ev.Err,
		})
	}
}
