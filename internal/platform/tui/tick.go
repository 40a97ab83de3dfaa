// Package tui provides the Bubble Tea integration for the adventure.
// It handles the terminal UI loop, input mapping, the records board and
// remote play over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen tells the ticks
// of successive games apart, so a stale tick cannot speed up a new game.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
