package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/world"
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	BugChar    = 'W'
	LaserChar  = '│'
)

var glyphs = map[world.Kind]struct {
	r rune
	c core.Color
}{
	world.KindPlayer: {PlayerChar, core.ColorBrightCyan},
	world.KindBug:    {BugChar, core.ColorBrightGreen},
	world.KindLaser:  {LaserChar, core.ColorBrightYellow},
}

// Render draws the HUD on the first row and the arena, boxed, below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	st := g.State()
	hud := fmt.Sprintf(" INVADERS  bugs %d  lasers %d  frame %d ", st.Bugs, st.Lasers, st.Frame)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	if field.W < 3 || field.H < 3 {
		return
	}
	dst.DrawBox(field, core.ColorGray)
	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)

	for _, v := range g.world.View() {
		x, y := g.cellFor(v.Pos, inner)
		if !inner.Contains(x, y) {
			continue
		}
		gl := glyphs[v.Kind]
		dst.SetColored(x, y, gl.r, gl.c)
	}
}

// cellFor maps a world position onto a cell of the inner rectangle. The
// arena's left/right and top/bottom edges land on the first/last column and
// row; positions outside the arena land outside the rectangle.
func (g *Game) cellFor(pos core.Vec2, inner core.Rect) (int, int) {
	aw, ah := g.Arena()
	fx := (pos.X + float64(aw)/2) / float64(aw)
	fy := (float64(ah)/2 - pos.Y) / float64(ah)
	x := inner.X + int(math.Round(fx*float64(inner.W-1)))
	y := inner.Y + int(math.Round(fy*float64(inner.H-1)))
	return x, y
}
