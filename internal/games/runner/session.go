package runner

import (
	"time"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/voice"
)

// Rules are the fixed parameters of a frame update.
type Rules struct {
	Mapping          voice.Mapping
	LandingTolerance float64
}

// Events reports what happened during one frame.
type Events struct {
	Landed         bool
	Crashed        bool
	CoinsCollected int
	Spawned        int
}

// NewState returns the starting state for a configuration: the character
// hovering StartLift above the ground at base speed, and an empty world.
func NewState(cfg config.RunnerConfig) State {
	ch := cfg.Character
	return State{
		Canvas: core.Box{W: cfg.Canvas.Width, H: cfg.Canvas.Height},
		Character: Character{
			Box: core.Box{
				X: ch.X,
				Y: cfg.Canvas.Height - ch.Height - ch.StartLift,
				W: ch.Width,
				H: ch.Height,
			},
			Speed:     ch.BaseSpeed,
			Gravity:   ch.Gravity,
			JumpPower: ch.JumpPower,
		},
	}
}

// Advance computes the next frame. Voice readings that arrived since the
// previous frame are applied first, in order; then physics, scrolling and
// collisions. A finished game is returned unchanged.
func Advance(s State, volumes []float64, r Rules) (State, Events) {
	var ev Events
	if s.GameOver {
		return s, ev
	}

	c := s.Character
	for _, v := range volumes {
		ctl := r.Mapping.Apply(voice.Control{DY: c.DY, Speed: c.Speed, Grounded: c.Grounded}, v)
		c.DY, c.Speed = ctl.DY, ctl.Speed
	}

	c = ApplyPhysics(c, s.Canvas.H)
	s.Obstacles = ScrollObstacles(s.Obstacles, c.Speed)
	s.Coins = ScrollCoins(s.Coins, c.Speed)

	c, ev.Landed, ev.Crashed = ResolveObstacles(c, s.Obstacles, r.LandingTolerance)
	if ev.Crashed {
		s.GameOver = true
	}

	s.Coins, ev.CoinsCollected = CollectCoins(c, s.Coins)
	s.Score += ev.CoinsCollected
	s.Character = c
	return s, ev
}

// Session owns the state of one run from start to game over. Restarting
// means discarding the session and creating a new one.
type Session struct {
	state   State
	rules   Rules
	spawner *Spawner
	frames  int
	played  time.Duration
}

// NewSession creates a session for cfg with the given RNG seed.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	return &Session{
		state: NewState(cfg),
		rules: Rules{
			Mapping:          voice.NewMapping(cfg),
			LandingTolerance: cfg.Obstacles.LandingTolerance,
		},
		spawner: NewSpawner(seed, cfg),
	}
}

// Step runs one frame. elapsed is the wall-clock time since the previous
// frame and drives the spawner. Once the game is over Step does nothing.
func (s *Session) Step(volumes []float64, elapsed time.Duration) Events {
	if s.state.GameOver {
		return Events{}
	}

	next, ev := Advance(s.state, volumes, s.rules)
	s.frames++
	s.played += elapsed

	if !next.GameOver {
		for range s.spawner.Advance(elapsed) {
			o, coins := s.spawner.Spawn()
			next.Obstacles = append(next.Obstacles, o)
			next.Coins = append(next.Coins, coins...)
			ev.Spawned++
		}
	}

	s.state = next
	return ev
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Frames returns the number of frames simulated.
func (s *Session) Frames() int {
	return s.frames
}

// Played returns the wall-clock time simulated.
func (s *Session) Played() time.Duration {
	return s.played
}
