package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries a rendered frame from the game loop to the model.
type FrameMsg string

// framesClosedMsg is sent once the game loop has torn the host down.
type framesClosedMsg struct{}

// waitForFrame returns a Bubble Tea command that blocks until the next frame.
func waitForFrame(frames <-chan string) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-frames
		if !ok {
			return framesClosedMsg{}
		}
		return FrameMsg(frame)
	}
}
