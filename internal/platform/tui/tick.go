// Package tui hosts the invaders game in a terminal with Bubble Tea.
// The simulation runs on its own goroutine; the Bubble Tea side maps keys
// and mouse presses to bridge commands and redraws the latest snapshot at a
// fixed frame rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg triggers a redraw from the latest snapshot.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// frame at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
