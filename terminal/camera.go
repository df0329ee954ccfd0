package terminal

import (
	"math"

	"github.com/eniklas/nachtmission/vmath"
)

// Camera maps the side view (x, y) plane onto screen cells, depth only orders drawing
type Camera struct {
	CenterX     float64
	UnitsPerCol float64
	UnitsPerRow float64

	Width     int
	GroundRow int // Row drawn as terrain, y = 0 sits just above it
}

// NewCamera fits the air space between the HUD row and the terrain row to ceiling
func NewCamera(width, height int, unitsPerCol, ceiling float64) Camera {
	ground := height - 2
	airRows := ground - 1
	upr := ceiling
	if airRows > 1 {
		upr = ceiling / float64(airRows-1)
	}
	return Camera{
		UnitsPerCol: unitsPerCol,
		UnitsPerRow: upr,
		Width:       width,
		GroundRow:   ground,
	}
}

// Follow centres on x, clamped so the view stays inside [left, right]
func (c *Camera) Follow(x, left, right float64) {
	half := float64(c.Width) / 2 * c.UnitsPerCol
	switch {
	case right-left <= 2*half:
		c.CenterX = (left + right) / 2
	case x-half < left:
		c.CenterX = left + half
	case x+half > right:
		c.CenterX = right - half
	default:
		c.CenterX = x
	}
}

// Column returns the screen column of world x
func (c Camera) Column(x float64) int {
	return c.Width/2 + int(math.Floor((x-c.CenterX)/c.UnitsPerCol))
}

// WorldX returns the world x at the centre of col
func (c Camera) WorldX(col int) float64 {
	return c.CenterX + (float64(col-c.Width/2)+0.5)*c.UnitsPerCol
}

// Project returns the cell for pos, ok is false when it falls outside the air space
func (c Camera) Project(pos vmath.Vec3F) (col, row int, ok bool) {
	col = c.Column(pos.X)
	row = c.GroundRow - 1 - int(math.Floor(math.Max(pos.Y, 0)/c.UnitsPerRow))
	ok = col >= 0 && col < c.Width && row >= 1 && row < c.GroundRow
	return col, row, ok
}
