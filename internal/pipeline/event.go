package pipeline

import (
	"github.com/charmbracelet/log"
)

// State is the phase of a step an Event reports.
type State int

const (
	Started State = iota
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Started:
		return "started"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Event is a progress notification for one step of a run.
type Event struct {
	Step   string
	State  State
	Detail string
	Err    error
}

// Notifier receives events synchronously, in order.
type Notifier func(Event)

// LogEvents returns a Notifier that writes events to l.
func LogEvents(l *log.Logger) Notifier {
	return func(ev Event) {
		switch ev.State {
		case Started:
			l.Debug(ev.Step)
		case Done:
			l.Info(ev.Step, "result", ev.Detail)
		case Failed:
			l.Error(ev.Step, "err", ev.Err)
		}
	}
}
