package tui

import (
	"fmt"
	"strings"

	"exoplayerlcevc/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
)

var (
	appPad = lipgloss.NewStyle().Padding(0, 1)

	muted = lipgloss.NewStyle().Faint(true)
	bold  = lipgloss.NewStyle().Bold(true)

	titleBar = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	okMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✓")
	failMark = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✗")

	errorBox = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Bold(true)

	footer = lipgloss.NewStyle().MarginTop(1)
)

// chrome is the number of lines taken by everything but the step list.
const chrome = 8

func (m model) View() string {
	w := m.width - 2
	if w <= 0 {
		w = 80
	}

	header := titleBar.Width(w - 2).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			bold.Render("ExoPlayer LCEVC patcher"),
			muted.Render(m.title),
		),
	)

	var body strings.Builder
	for _, s := range m.visibleSteps() {
		switch s.state {
		case pipeline.Failed:
			fmt.Fprintf(&body, "%s %s\n", failMark, s.name)
		default:
			fmt.Fprintf(&body, "%s %s %s\n", okMark, s.name, muted.Render("("+s.detail+")"))
		}
	}
	if m.current != "" {
		fmt.Fprintf(&body, "%s %s\n", m.spin.View(), m.current)
	}

	var status string
	switch {
	case m.done && m.err != nil:
		status = errorBox.Width(w - 2).Render("Error: " + m.err.Error())
	case m.done:
		status = bold.Render("Success.")
	case m.canceling:
		status = muted.Render("Canceling… press ctrl+c again to quit now")
	default:
		status = muted.Render("ctrl+c / q: cancel")
	}

	return appPad.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.TrimRight(body.String(), "\n"),
			footer.Render(status),
		),
	)
}

// visibleSteps trims the finished steps to what fits on screen, keeping the newest.
func (m model) visibleSteps() []stepLine {
	if m.height <= 0 {
		return m.steps
	}
	room := m.height - chrome
	if room < 1 {
		room = 1
	}
	if len(m.steps) <= room {
		return m.steps
	}
	return m.steps[len(m.steps)-room:]
}
