// Package tui provides the Bubble Tea integration for the lander.
// It handles the terminal UI loop, input mapping, key release synthesis
// and the asynchronous sprite and config messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is the period of the mission clock.
const clockInterval = time.Second

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ClockMsg is the low-frequency mission clock tick.
type ClockMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clockCmd schedules the next mission clock tick.
func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
