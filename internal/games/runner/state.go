package runner

import "github.com/vovakirdan/voicerun/internal/core"

// Character is the runner body. X, Y, W and H come from the embedded box.
type Character struct {
	core.Box
	DY        float64 // Vertical velocity, positive = down
	Speed     float64 // Horizontal scroll speed applied to the world
	Gravity   float64
	JumpPower float64
	Grounded  bool // Resting on the ground or an obstacle top
}

// Obstacle is a block rising from the ground.
type Obstacle struct {
	core.Box
}

// Coin is a collectible. X and Y are its centre.
type Coin struct {
	X, Y   float64
	Radius float64
}

// Bounds returns the coin's bounding square.
func (c Coin) Bounds() core.Box {
	return core.Box{X: c.X - c.Radius, Y: c.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}

// State is the complete simulation state of one session.
// Update functions take a State and return a new one; slices in the input
// are never modified.
type State struct {
	Canvas    core.Box
	Character Character
	Obstacles []Obstacle
	Coins     []Coin
	Score     int
	GameOver  bool
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	c.Coins = append([]Coin(nil), s.Coins...)
	return c
}
