// Package tui provides the Bubble Tea integration for the snooker scoreboard.
// It handles the terminal UI loop, key mapping and threading the frame
// state through the score engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 4 * time.Second

// statusExpiredMsg clears the status line if it is still the one identified by id.
type statusExpiredMsg struct {
	id int
}

// statusExpireCmd returns a Bubble Tea command that expires status id after statusTimeout.
func statusExpireCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}
