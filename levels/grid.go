package levels

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
)

// SolidTile is the only tile value that blocks movement.
const SolidTile = 1

// Grid exposes the collision layer (layer 0) of a level.
type Grid struct {
	level *Level
}

func NewGrid(l *Level) *Grid {
	return &Grid{level: l}
}

func (g *Grid) Width() int {
	if g == nil || g.level == nil {
		return 0
	}
	return g.level.Width
}

func (g *Grid) Height() int {
	if g == nil || g.level == nil {
		return 0
	}
	return g.level.Height
}

func (g *Grid) Solid(x, y int) bool {
	if g == nil || g.level == nil {
		return false
	}
	return g.level.Tile(0, x, y) == SolidTile
}

// PixelHeight is the map height in world pixels.
func (l *Level) PixelHeight() float64 {
	return float64(l.Height) * common.TileSize
}

// PixelWidth is the map width in world pixels.
func (l *Level) PixelWidth() float64 {
	return float64(l.Width) * common.TileSize
}

// WorldBox converts an object's rectangle into world space, y pointing up.
func (l *Level) WorldBox(o Object) cp.BB {
	h := l.PixelHeight()
	return cp.BB{L: o.X, B: h - (o.Y + o.Height), R: o.X + o.Width, T: h - o.Y}
}
