package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/voicerun/internal/core"
)

// Visual characters for rendering
const (
	RunnerChar   = '█'
	ObstacleChar = '▓'
	CoinChar     = '●'
	GroundChar   = '═'
)

// viewport maps canvas units onto screen cells. Row 0 is the HUD and the
// last row is the ground line; the canvas fills the rows in between.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, canvas core.Box) viewport {
	rows := dst.Height() - 2
	if rows < 1 {
		rows = 1
	}
	return viewport{
		top: 1,
		sx:  float64(dst.Width()) / canvas.W,
		sy:  float64(rows) / canvas.H,
	}
}

// rect converts a box to the cells it covers. Every visible box covers at
// least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, v.top+y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// point converts a canvas point to a cell.
func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.Snapshot()
	vp := newViewport(dst, s.Canvas)

	// Draw ground
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range s.Obstacles {
		dst.DrawRect(vp.rect(o.Box), ObstacleChar, core.ColorGreen)
	}
	for _, c := range s.Coins {
		x, y := vp.point(c.X, c.Y)
		dst.SetColor(x, y, CoinChar, core.ColorBrightYellow)
	}
	dst.DrawRect(vp.rect(s.Character.Box), RunnerChar, core.ColorRed)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score))
	dst.DrawTextCentered(0, fmt.Sprintf(" %s  %.1fs ", g.Title(), g.played().Seconds()))
	speedText := fmt.Sprintf(" Spd: %.1f ", s.Character.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
