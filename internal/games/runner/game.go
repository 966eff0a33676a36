// Package runner implements a voice-controlled endless runner. The character
// scrolls past obstacles; microphone volume makes it jump and sets the pace.
package runner

import (
	"time"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a runner Session to the platform's Game interface.
type Game struct {
	variant config.Variant
	runtime core.RuntimeConfig
	session *Session
	paused  bool
	loadErr error // Last config load failure; defaults were used instead
}

// New creates a game for the given variant.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// Variant returns the rule set this game plays.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantCoins {
		return "Voice Runner (coins)"
	}
	return "Voice Runner"
}

// Reset starts a fresh session, discarding the previous one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultConfig(g.variant)
	}
	g.loadErr = err

	g.session = NewSession(cfg, runtime.Seed)
	g.paused = false
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.runtime.FrameDuration()
	}

	ev := g.session.Step(in.Volumes, elapsed)

	return core.StepResult{
		State:          g.State(),
		CoinsCollected: ev.CoinsCollected,
		Spawned:        ev.Spawned,
		Landed:         ev.Landed,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() State {
	if g.session == nil {
		return NewState(config.DefaultConfig(g.variant))
	}
	return g.session.State()
}

// played returns how long the current session has been running.
func (g *Game) played() time.Duration {
	if g.session == nil {
		return 0
	}
	return g.session.Played()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session.state
	return core.GameState{
		Score:    s.Score,
		GameOver: s.GameOver,
		Paused:   g.paused,
		Speed:    s.Character.Speed,
	}
}

// Register both variants with the registry
func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return New(config.VariantClassic)
	})
	registry.Register(config.VariantCoins, func() registry.Game {
		return New(config.VariantCoins)
	})
}
