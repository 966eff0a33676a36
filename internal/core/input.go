package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space, click - press the start button
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the platform observed between two frames.
// Games consume it once per Step and never see raw keys or audio buffers.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Volumes holds the signal energy of every audio buffer processed since
	// the previous frame, oldest first.
	Volumes []float64

	// Elapsed is the wall-clock time since the previous frame.
	// Zero means the platform did not measure it.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddVolume queues an audio reading for this frame.
func (f *InputFrame) AddVolume(v float64) {
	f.Volumes = append(f.Volumes, v)
}

// Clear starts the next frame on fresh storage. Frames already handed to a
// game keep their actions and readings.
func (f *InputFrame) Clear() {
	f.Actions = make(map[Action]bool)
	f.Volumes = nil
	f.Elapsed = 0
}
