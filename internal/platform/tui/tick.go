// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame scheduler iteration.
type TickMsg time.Time

// minTickInterval keeps the Bubble Tea event loop responsive when the
// scheduler asks for the next frame immediately, which happens in
// uncapped mode and after frames that use their whole budget.
const minTickInterval = time.Millisecond

// tickCmd returns a Bubble Tea command that delivers the next TickMsg
// after the wait requested by the scheduler.
func tickCmd(wait time.Duration) tea.Cmd {
	if wait < minTickInterval {
		wait = minTickInterval
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
