package runner

// Contact describes how the character met an obstacle.
type Contact int

const (
	ContactNone  Contact = iota
	ContactLand          // Came down onto the top edge
	ContactCrash         // Hit a side or the underside
)

// Classify decides how c touches o. tolerance widens the landing band
// below the obstacle's top edge.
func Classify(c Character, o Obstacle, tolerance float64) Contact {
	if !c.Intersects(o.Box) {
		return ContactNone
	}
	// Landing needs downward (or no) motion and the previous bottom at or
	// just below the top edge.
	if c.DY >= 0 && c.Bottom()-c.DY <= o.Y+tolerance {
		return ContactLand
	}
	return ContactCrash
}

// ResolveObstacles applies every obstacle contact to c. A landing snaps the
// character onto the top edge; any other overlap ends the game.
func ResolveObstacles(c Character, obstacles []Obstacle, tolerance float64) (Character, bool, bool) {
	landed, crashed := false, false
	for _, o := range obstacles {
		switch Classify(c, o, tolerance) {
		case ContactLand:
			c.Y = o.Y - c.H
			c.DY = 0
			c.Grounded = true
			landed = true
		case ContactCrash:
			crashed = true
		}
	}
	return c, landed, crashed
}

// CollectCoins removes every coin overlapping the character and returns
// the remaining coins and how many were taken.
func CollectCoins(c Character, coins []Coin) ([]Coin, int) {
	kept := make([]Coin, 0, len(coins))
	taken := 0
	for _, coin := range coins {
		if c.Intersects(coin.Bounds()) {
			taken++
			continue
		}
		kept = append(kept, coin)
	}
	return kept, taken
}
