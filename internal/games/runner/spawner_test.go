package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

func TestSpawnerPeriod(t *testing.T) {
	sp := NewSpawner(1, config.DefaultConfig(config.VariantClassic))

	if n := sp.Advance(1999 * time.Millisecond); n != 0 {
		t.Fatalf("Advance(1.999s) = %d, expected 0", n)
	}
	if n := sp.Advance(time.Millisecond); n != 1 {
		t.Fatalf("Advance(1ms) = %d, expected 1", n)
	}
	if n := sp.Advance(4 * time.Second); n != 2 {
		t.Errorf("Advance(4s) = %d, expected 2", n)
	}
	if n := sp.Advance(0); n != 0 {
		t.Errorf("Advance(0) = %d, expected 0", n)
	}
}

func TestSpawnerIndependentOfFrameRate(t *testing.T) {
	cfg := config.DefaultConfig(config.VariantClassic)

	for _, fps := range []int{30, 60, 144} {
		sp := NewSpawner(1, cfg)
		frame := time.Second / time.Duration(fps)

		spawned := 0
		for i := 0; i < 7*fps; i++ {
			spawned += sp.Advance(frame)
		}
		if spawned != 3 {
			t.Errorf("%d fps: spawned %d obstacles in 7s, expected 3", fps, spawned)
		}
	}
}

func TestSpawnClassic(t *testing.T) {
	cfg := config.DefaultConfig(config.VariantClassic)
	sp := NewSpawner(42, cfg)

	for i := 0; i < 100; i++ {
		o, coins := sp.Spawn()

		if o.X != cfg.Canvas.Width {
			t.Fatalf("obstacle X = %v, expected %v", o.X, cfg.Canvas.Width)
		}
		if o.W != 50 {
			t.Fatalf("obstacle W = %v, expected 50", o.W)
		}
		if o.H < 50 || o.H >= 50+720*0.25 {
			t.Fatalf("obstacle H = %v outside [50, 230)", o.H)
		}
		if o.Bottom() != cfg.Canvas.Height {
			t.Fatalf("obstacle bottom = %v, expected on the ground", o.Bottom())
		}
		if coins != nil {
			t.Fatal("classic variant should not spawn coins")
		}
	}
}

func TestSpawnCoins(t *testing.T) {
	cfg := config.DefaultConfig(config.VariantCoins)
	sp := NewSpawner(42, cfg)

	for i := 0; i < 100; i++ {
		o, coins := sp.Spawn()

		if o.W < 150 || o.W >= 200 {
			t.Fatalf("obstacle W = %v outside [150, 200)", o.W)
		}
		if o.H < 100 || o.H >= 100+720*0.25 {
			t.Fatalf("obstacle H = %v outside [100, 280)", o.H)
		}
		if len(coins) < 7 || len(coins) > 9 {
			t.Fatalf("got %d coins for width %v", len(coins), o.W)
		}
		for _, c := range coins {
			if c.Y != o.Y-10 || c.X-c.Radius < o.X || c.X+c.Radius > o.Right()+1e-9 {
				t.Fatalf("coin %+v not on top of obstacle %+v", c, o.Box)
			}
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultConfig(config.VariantCoins)
	a := NewSpawner(12345, cfg)
	b := NewSpawner(12345, cfg)

	for i := 0; i < 20; i++ {
		oa, ca := a.Spawn()
		ob, cb := b.Spawn()
		if oa != ob || len(ca) != len(cb) {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestLayoutCoins(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		radius float64
		count  int
	}{
		{"exact fit", 140, 10, 7},
		{"with gaps", 150, 10, 7},
		{"single coin", 25, 10, 1},
		{"too narrow", 15, 10, 0},
		{"no radius", 150, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Obstacle{Box: core.Box{X: 1000, Y: 500, W: tt.width, H: 220}}
			coins := LayoutCoins(o, tt.radius, 1)

			if len(coins) != tt.count {
				t.Fatalf("got %d coins, expected %d", len(coins), tt.count)
			}
			if tt.count == 0 {
				return
			}
			if tt.count == 1 {
				if coins[0].X != o.X+o.W/2 {
					t.Errorf("single coin X = %v, expected centred at %v", coins[0].X, o.X+o.W/2)
				}
				return
			}

			first, last := coins[0], coins[len(coins)-1]
			if first.X-first.Radius != o.X {
				t.Errorf("first coin starts at %v, expected %v", first.X-first.Radius, o.X)
			}
			if math.Abs(last.X+last.Radius-o.Right()) > 1e-9 {
				t.Errorf("last coin ends at %v, expected %v", last.X+last.Radius, o.Right())
			}
			for _, c := range coins {
				if c.Y != o.Y-tt.radius {
					t.Errorf("coin Y = %v, expected %v", c.Y, o.Y-tt.radius)
				}
			}
		})
	}
}
