// Package config provides YAML-based configuration loading for the runner
// variants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Variant names the two shipped rule sets.
type Variant string

const (
	VariantClassic Variant = "classic" // Obstacles only
	VariantCoins   Variant = "coins"   // Wider obstacles topped with coins
)

// RunnerConfig contains all configuration for one runner variant.
type RunnerConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Character CharacterConfig `yaml:"character"`
	Voice     VoiceConfig     `yaml:"voice"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Coins     CoinConfig      `yaml:"coins"`
}

// CanvasConfig defines the size of the simulated world in canvas units.
// The renderer scales it onto whatever terminal is available.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CharacterConfig defines the runner body and its physics constants.
type CharacterConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StartLift float64 `yaml:"start_lift"` // Distance above the ground at spawn
	Gravity   float64 `yaml:"gravity"`
	JumpPower float64 `yaml:"jump_power"` // Negative = up
	BaseSpeed float64 `yaml:"base_speed"`
}

// VoiceConfig defines audio analysis and the volume-to-control mapping.
type VoiceConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	BufferSize   int     `yaml:"buffer_size"` // Frames per processing callback
	WindowSize   int     `yaml:"window_size"` // Samples analysed per callback
	Threshold    float64 `yaml:"threshold"`
	Reference    float64 `yaml:"reference"` // Volume that yields exactly JumpPower
	SpeedDivisor float64 `yaml:"speed_divisor"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

// ObstacleConfig defines spawning and collision parameters for obstacles.
type ObstacleConfig struct {
	SpawnInterval    time.Duration `yaml:"spawn_interval"`
	MinHeight        float64       `yaml:"min_height"`
	HeightRangeRatio float64       `yaml:"height_range_ratio"` // Fraction of canvas height
	MinWidth         float64       `yaml:"min_width"`
	WidthRange       float64       `yaml:"width_range"`
	LandingTolerance float64       `yaml:"landing_tolerance"`
}

// CoinConfig defines coin layout. Disabled in the classic variant.
type CoinConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Radius        float64 `yaml:"radius"`
	SpacingFactor float64 `yaml:"spacing_factor"`
}

// ParseVariant converts a CLI/registry name into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch Variant(name) {
	case VariantClassic, VariantCoins:
		return Variant(name), nil
	}
	return "", fmt.Errorf("config: unknown variant %q", name)
}

// Summary describes the rules of c in one line, for variant listings.
func (c RunnerConfig) Summary() string {
	o := c.Obstacles
	width := fmt.Sprintf("%g", o.MinWidth)
	if o.WidthRange > 0 {
		width = fmt.Sprintf("%g-%g", o.MinWidth, o.MinWidth+o.WidthRange)
	}
	s := fmt.Sprintf("obstacle every %v, width %s", o.SpawnInterval, width)
	if c.Coins.Enabled {
		s += ", coins on top"
	}
	return s
}

// Validate reports values that would make the simulation meaningless.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Character.Width <= 0 || c.Character.Height <= 0 {
		errs = append(errs, errors.New("character size must be positive"))
	}
	if c.Character.Height > c.Canvas.Height {
		errs = append(errs, errors.New("character is taller than the canvas"))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, errors.New("obstacles.spawn_interval must be positive"))
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.WidthRange < 0 {
		errs = append(errs, errors.New("obstacle width must be positive"))
	}
	if c.Voice.BufferSize <= 0 || c.Voice.WindowSize <= 0 || c.Voice.SampleRate <= 0 {
		errs = append(errs, errors.New("voice sample_rate, buffer_size and window_size must be positive"))
	}
	if c.Voice.Reference <= 0 || c.Voice.SpeedDivisor <= 0 {
		errs = append(errs, errors.New("voice reference and speed_divisor must be positive"))
	}
	if c.Coins.Enabled && (c.Coins.Radius <= 0 || c.Coins.SpacingFactor <= 0) {
		errs = append(errs, errors.New("coin radius and spacing_factor must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
