package runner

// ApplyPhysics advances the character by one frame: gravity, then velocity,
// then clamping to the ground and to the top of the canvas.
func ApplyPhysics(c Character, canvasH float64) Character {
	c.DY += c.Gravity
	c.Y += c.DY

	if c.Bottom() > canvasH {
		c.Y = canvasH - c.H
		c.DY = 0
		c.Grounded = true
	} else {
		c.Grounded = false
	}

	if c.Y < 0 {
		c.Y = 0
		c.DY = 0
	}
	return c
}

// ScrollObstacles moves obstacles left by speed and drops those whose
// trailing edge has passed x = 0.
func ScrollObstacles(obstacles []Obstacle, speed float64) []Obstacle {
	kept := make([]Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		o.X -= speed
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}

// ScrollCoins moves coins left by speed and drops those that left the
// screen (X + Radius <= 0).
func ScrollCoins(coins []Coin, speed float64) []Coin {
	kept := make([]Coin, 0, len(coins))
	for _, c := range coins {
		c.X -= speed
		if c.X+c.Radius > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}
