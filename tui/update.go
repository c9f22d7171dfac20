package tui

import (
	"exoplayerlcevc/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

type eventMsg pipeline.Event

type doneMsg struct {
	err error
}

func (m model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key != "q" && key != "ctrl+c" {
			return m, nil
		}
		if m.canceling {
			return m, tea.Quit
		}
		m.canceling = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, nil

	case eventMsg:
		m.record(pipeline.Event(msg))
		return m, nil

	case doneMsg:
		m.done = true
		m.current = ""
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
}
