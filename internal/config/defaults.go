package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/coins.yaml
var defaultCoinsYAML []byte

// DefaultConfig returns the hard-coded configuration for a variant.
// It mirrors the embedded YAML and is used when that fails to parse.
func DefaultConfig(v Variant) RunnerConfig {
	cfg := RunnerConfig{
		Canvas: CanvasConfig{
			Width:  1280,
			Height: 720,
		},
		Character: CharacterConfig{
			X:         50,
			Width:     50,
			Height:    50,
			StartLift: 100,
			Gravity:   0.5,
			JumpPower: -15,
			BaseSpeed: 2,
		},
		Voice: VoiceConfig{
			SampleRate:   44100,
			BufferSize:   512,
			WindowSize:   128,
			Threshold:    5,
			Reference:    50,
			SpeedDivisor: 10,
			MaxSpeed:     10,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval:    2 * time.Second,
			MinHeight:        50,
			HeightRangeRatio: 0.25,
			MinWidth:         50,
			WidthRange:       0,
			LandingTolerance: 1,
		},
	}

	if v == VariantCoins {
		cfg.Obstacles.SpawnInterval = 1500 * time.Millisecond
		cfg.Obstacles.MinHeight = 100
		cfg.Obstacles.MinWidth = 150
		cfg.Obstacles.WidthRange = 50
		cfg.Coins = CoinConfig{
			Enabled:       true,
			Radius:        10,
			SpacingFactor: 1,
		}
	}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(v Variant) []byte {
	switch v {
	case VariantClassic:
		return defaultClassicYAML
	case VariantCoins:
		return defaultCoinsYAML
	default:
		return nil
	}
}
