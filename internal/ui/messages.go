package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameRate is the number of simulation steps scheduled per second.
const frameRate = 60

type frameMsg time.Time
type typeMsg struct{}
type resizeSettledMsg struct {
	gen           int
	width, height int
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func typeCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return typeMsg{}
	})
}

func resizeCmd(gen, width, height int) tea.Cmd {
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeSettledMsg{gen: gen, width: width, height: height}
	})
}
