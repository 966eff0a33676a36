package voice

import "github.com/vovakirdan/voicerun/internal/config"

// Control is the part of the runner body that voice input drives.
type Control struct {
	DY       float64 // Vertical velocity, negative = up
	Speed    float64 // Horizontal scroll speed
	Grounded bool
}

// Mapping converts a volume reading into control values.
//
// Loud input (above Threshold) sets the vertical velocity to
// JumpPower * volume / Reference; there is no ceiling, so very loud input
// jumps higher than the tuned height. Quiet input on the ground pins the
// velocity to zero. Speed follows volume continuously up to MaxSpeed.
type Mapping struct {
	Threshold    float64
	Reference    float64
	JumpPower    float64
	BaseSpeed    float64
	SpeedDivisor float64
	MaxSpeed     float64
}

// NewMapping builds a Mapping from a runner configuration.
func NewMapping(cfg config.RunnerConfig) Mapping {
	return Mapping{
		Threshold:    cfg.Voice.Threshold,
		Reference:    cfg.Voice.Reference,
		JumpPower:    cfg.Character.JumpPower,
		BaseSpeed:    cfg.Character.BaseSpeed,
		SpeedDivisor: cfg.Voice.SpeedDivisor,
		MaxSpeed:     cfg.Voice.MaxSpeed,
	}
}

// Loud reports whether volume crosses the jump threshold.
func (m Mapping) Loud(volume float64) bool {
	return volume > m.Threshold
}

// Impulse returns the vertical velocity produced by a loud reading.
func (m Mapping) Impulse(volume float64) float64 {
	return m.JumpPower * (volume / m.Reference)
}

// Speed returns the scroll speed for a reading.
func (m Mapping) Speed(volume float64) float64 {
	return min(m.MaxSpeed, m.BaseSpeed+volume/m.SpeedDivisor)
}

// Apply returns c updated for one reading.
func (m Mapping) Apply(c Control, volume float64) Control {
	if m.Loud(volume) {
		c.DY = m.Impulse(volume)
	} else if c.Grounded {
		c.DY = 0
	}
	c.Speed = m.Speed(volume)
	return c
}
