// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, voice readings and
// game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voicerun/internal/voice"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ReadingMsg carries one voice reading from the audio goroutine.
type ReadingMsg voice.Reading

// readingsClosedMsg reports that the voice controller stopped publishing.
type readingsClosedMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForReading blocks on the readings channel and delivers the next
// reading as a message. The model re-issues it after every reading.
func waitForReading(ch <-chan voice.Reading) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return readingsClosedMsg{}
		}
		return ReadingMsg(r)
	}
}
