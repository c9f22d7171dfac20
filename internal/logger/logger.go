// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Log is the shared logger. It writes to stderr until Setup is called.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// Setup points Log at w and applies the named level. Unknown levels fall back to info.
func Setup(w io.Writer, level string) {
	Log.SetOutput(w)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		Log.SetLevel(log.InfoLevel)
		Log.Warn("unknown log level; using info", "level", level)
		return
	}
	Log.SetLevel(lvl)
}
