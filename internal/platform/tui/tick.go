// Package tui runs the game in a terminal with Bubble Tea.
// It owns the tick loop, key and mouse mapping, and cell rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// maxTickGap caps the dt fed to the simulation after a stall (suspended
// process, slow terminal) so one tick never covers seconds of play.
const maxTickGap = 250 * time.Millisecond

// tickDelta returns the wall-clock time since the previous tick.
func tickDelta(prev, now time.Time, nominal time.Duration) time.Duration {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev)
	switch {
	case dt <= 0:
		return nominal
	case dt > maxTickGap:
		return maxTickGap
	}
	return dt
}
