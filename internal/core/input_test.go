package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // Zero value must be usable
	if f.Has(ActionPause) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set action should be reported by Has")
	}
	if f.Has(ActionRestart) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClearKeepsDeliveredFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.AddVolume(12)
	f.AddVolume(40)
	f.Elapsed = 16 * time.Millisecond

	delivered := f // What a game receives by value in Step
	f.Clear()

	if !delivered.Has(ActionPause) {
		t.Error("Clear must not remove actions from a delivered frame")
	}
	if len(delivered.Volumes) != 2 || delivered.Volumes[0] != 12 || delivered.Volumes[1] != 40 {
		t.Errorf("delivered volumes = %v, expected [12 40]", delivered.Volumes)
	}

	if f.Has(ActionPause) || len(f.Volumes) != 0 || f.Elapsed != 0 {
		t.Errorf("cleared frame should be empty, got %+v", f)
	}

	// New readings must not overwrite the delivered ones
	f.AddVolume(99)
	if delivered.Volumes[0] != 12 {
		t.Errorf("delivered volumes changed to %v after reuse", delivered.Volumes)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionStart, "Start"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.want)
		}
	}
}
