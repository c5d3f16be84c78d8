package system

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// DefaultSkin is the margin added around character boxes before resolving.
const DefaultSkin = 0.5

// TileGrid answers solidity queries on a uniform grid. Row 0 is the top row.
type TileGrid interface {
	Width() int
	Height() int
	Solid(x, y int) bool
}

// TouchPolicy decides when a resolved contact counts as touching.
type TouchPolicy int

const (
	// TouchStrict reports contact when dist > -skin.
	TouchStrict TouchPolicy = iota
	// TouchInclusive reports contact when dist >= -skin.
	TouchInclusive
)

func ParseTouchPolicy(s string) (TouchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return TouchStrict, nil
	case "inclusive":
		return TouchInclusive, nil
	}
	return TouchStrict, fmt.Errorf("system: unknown touch policy %q", s)
}

func (p TouchPolicy) String() string {
	if p == TouchInclusive {
		return "inclusive"
	}
	return "strict"
}

func (p TouchPolicy) touches(dist, skin float64) bool {
	if p == TouchInclusive {
		return dist >= -skin
	}
	return dist > -skin
}

// Resolution is the outcome of resolving one box against a grid.
type Resolution struct {
	Penetration [4]float64
	Touch       common.DirFlags
	Offset      cp.Vector
}

// ResolveTiles computes per-direction penetration, contact flags and the
// correction offset for a world-space box. Cells outside the grid count as
// solid.
func ResolveTiles(box cp.BB, grid TileGrid, skin float64, policy TouchPolicy) Resolution {
	var res Resolution
	if grid == nil {
		return res
	}

	box = common.Inflate(box, skin)
	width, height := grid.Width(), grid.Height()

	inBounds := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height
	}
	open := func(x, y int) bool {
		return inBounds(x, y) && !grid.Solid(x, y)
	}

	beginX := common.FloorDiv(box.L, common.TileSize)
	endX := common.CeilDiv(box.R, common.TileSize)
	beginY := height - common.CeilDiv(box.T, common.TileSize)
	endY := height - common.FloorDiv(box.B, common.TileSize)

	for y := beginY; y < endY; y++ {
		for x := beginX; x < endX; x++ {
			if inBounds(x, y) && !grid.Solid(x, y) {
				continue
			}

			tile := cp.BB{
				L: float64(x) * common.TileSize,
				B: float64(height-y-1) * common.TileSize,
				R: float64(x+1) * common.TileSize,
				T: float64(height-y) * common.TileSize,
			}

			var dist [4]float64
			dist[common.Left] = tile.R - box.L
			dist[common.Right] = box.R - tile.L
			dist[common.Down] = tile.T - box.B
			dist[common.Up] = box.T - tile.B

			var exit [4]bool
			exit[common.Left] = open(x+1, y)
			exit[common.Right] = open(x-1, y)
			exit[common.Down] = open(x, y-1)
			exit[common.Up] = open(x, y+1)

			order := common.Directions
			sort.SliceStable(order[:], func(i, j int) bool {
				return dist[order[i]] < dist[order[j]]
			})

			for _, d := range order {
				if !exit[d] || dist[d] >= dist[d.Opposite()] {
					continue
				}
				res.Penetration[d] = math.Max(res.Penetration[d], dist[d]-skin)
				if policy.touches(dist[d], skin) {
					res.Touch |= d.Flag()
				}
				break
			}
		}
	}

	res.Offset = correction(res.Penetration)
	return res
}

// correction pushes along the smaller non-zero penetration of each axis.
func correction(pen [4]float64) cp.Vector {
	var off cp.Vector

	left, right := pen[common.Left], pen[common.Right]
	if right == 0 || (left != 0 && left < right) {
		off.X += left
	} else {
		off.X -= right
	}

	down, up := pen[common.Down], pen[common.Up]
	if up == 0 || (down != 0 && down < up) {
		off.Y += down
	} else {
		off.Y -= up
	}
	return off
}

// TileCollisionSystem pushes characters out of solid tiles and records their
// contacts for the next controller step.
type TileCollisionSystem struct {
	grid   TileGrid
	skin   float64
	policy TouchPolicy
}

func NewTileCollisionSystem(skin float64, policy TouchPolicy) *TileCollisionSystem {
	if skin <= 0 {
		skin = DefaultSkin
	}
	return &TileCollisionSystem{skin: skin, policy: policy}
}

// SetGrid swaps the grid, typically on level change.
func (s *TileCollisionSystem) SetGrid(grid TileGrid) {
	s.grid = grid
}

func (s *TileCollisionSystem) Grid() TileGrid {
	return s.grid
}

func (s *TileCollisionSystem) Update(w *ecs.World) {
	if w == nil || s.grid == nil {
		return
	}

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Physics == nil || !ecs.IsEnabledRec(w, e) {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}

		box := common.BoxAt(col.Box, cp.Vector{X: t.X, Y: t.Y})
		res := ResolveTiles(box, s.grid, s.skin, s.policy)

		for d := range c.Penetration {
			c.Penetration[d] = math.Max(c.Penetration[d], res.Penetration[d])
		}
		c.Touch.Current |= res.Touch

		// Only this pass's overlap moves the box, so a resolved box stays put.
		off := res.Offset
		if off.X != 0 || off.Y != 0 {
			t.X += off.X
			t.Y += off.Y
			col.Dirty = true
		}

		touch := c.Touch.Current
		if touch.Has(common.DirLeft) && c.Velocity.X < 0 {
			c.Velocity.X = 0
		}
		if touch.Has(common.DirRight) && c.Velocity.X > 0 {
			c.Velocity.X = 0
		}
		if touch.Has(common.DirDown) && c.Velocity.Y < 0 {
			c.Velocity.Y = 0
		}
		if touch.Has(common.DirUp) && c.Velocity.Y > 0 {
			c.Velocity.Y = 0
		}
	})
}
