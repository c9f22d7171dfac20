// Package tui renders the progress of a patch run with Bubble Tea.
// It shows the run's title, a spinner on the active step and the outcome of every
// finished step. The only keybinds cancel the run: ctrl+c or q once to cancel,
// twice to leave immediately.
package tui
