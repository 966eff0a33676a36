package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

// Spawner creates obstacles on a fixed wall-clock period, independent of
// the frame rate.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.ObstacleConfig
	coins   config.CoinConfig
	canvas  core.Box
	elapsed time.Duration // Time accumulated toward the next spawn
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.RunnerConfig) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg.Obstacles,
		coins:  cfg.Coins,
		canvas: core.Box{W: cfg.Canvas.Width, H: cfg.Canvas.Height},
	}
}

// Advance adds elapsed wall-clock time and returns how many spawn periods
// completed.
func (sp *Spawner) Advance(elapsed time.Duration) int {
	if elapsed <= 0 || sp.cfg.SpawnInterval <= 0 {
		return 0
	}
	sp.elapsed += elapsed
	due := int(sp.elapsed / sp.cfg.SpawnInterval)
	sp.elapsed -= time.Duration(due) * sp.cfg.SpawnInterval
	return due
}

// Spawn creates one obstacle at the right edge of the canvas, plus its coins
// when coins are enabled.
func (sp *Spawner) Spawn() (Obstacle, []Coin) {
	height := sp.cfg.MinHeight + sp.rng.Float64()*sp.canvas.H*sp.cfg.HeightRangeRatio
	width := sp.cfg.MinWidth
	if sp.cfg.WidthRange > 0 {
		width += sp.rng.Float64() * sp.cfg.WidthRange
	}

	o := Obstacle{Box: core.Box{
		X: sp.canvas.W,
		Y: sp.canvas.H - height,
		W: width,
		H: height,
	}}

	if !sp.coins.Enabled {
		return o, nil
	}
	return o, LayoutCoins(o, sp.coins.Radius, sp.coins.SpacingFactor)
}

// LayoutCoins spaces coins evenly along the top edge of o. The count is the
// number of diameter*spacing slots that fit the width; leftover width is
// shared as equal gaps between coins. A single coin is centred.
func LayoutCoins(o Obstacle, radius, spacing float64) []Coin {
	if radius <= 0 || spacing <= 0 {
		return nil
	}
	count := int(math.Floor(o.W / (2 * radius * spacing)))
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []Coin{{X: o.X + o.W/2, Y: o.Y - radius, Radius: radius}}
	}

	gap := (o.W - float64(count)*2*radius) / float64(count-1)
	coins := make([]Coin, count)
	for i := range coins {
		coins[i] = Coin{
			X:      o.X + float64(i)*(2*radius+gap) + radius,
			Y:      o.Y - radius,
			Radius: radius,
		}
	}
	return coins
}
