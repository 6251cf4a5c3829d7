// Package tui provides the Bubble Tea front end for Sigma Bird.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sigma-bird/internal/clock"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(clock.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
