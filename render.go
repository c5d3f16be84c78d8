package main

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/game"
	"github.com/milk9111/wallrun/levels"
)

// renderer draws the world with y pointing up, following the player.
// It only reads simulation state.
type renderer struct {
	width, height float64
	debug         bool
}

func newRenderer(width, height int, debug bool) *renderer {
	return &renderer{width: float64(width), height: float64(height), debug: debug}
}

type camera struct {
	x, y   float64
	height float64
}

func (c camera) toScreen(x, y float64) (float32, float32) {
	return float32(x - c.x), float32(c.height - (y - c.y))
}

func (r *renderer) camera(g *game.Game, alpha float64) camera {
	cam := camera{height: r.height}
	lvl, _ := g.Level()
	w := g.World()

	px, py := 0.0, 0.0
	if t, ok := ecs.Get(w, g.Player(), component.TransformComponent.Kind()); ok {
		px, py = t.Lerp(alpha)
	}
	cam.x = px - r.width/2
	cam.y = py - r.height/2
	if lvl != nil {
		cam.x = clamp(cam.x, 0, lvl.PixelWidth()-r.width)
		cam.y = clamp(cam.y, 0, lvl.PixelHeight()-r.height)
	}
	return cam
}

func (r *renderer) Draw(screen *ebiten.Image, g *game.Game, alpha float64) {
	screen.Fill(g.Background())

	cam := r.camera(g, alpha)
	if lvl, _ := g.Level(); lvl != nil {
		r.drawTiles(screen, lvl, cam)
	}
	r.drawSprites(screen, g.World(), cam, alpha)
	if g.EndScreen() {
		ebitenutil.DebugPrintAt(screen, "THE END", int(r.width/2)-21, 16)
	}
	if r.debug {
		r.drawColliders(screen, g.World(), cam)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  FPS %.0f\n%s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.PlayerState()))
	}
}

func (r *renderer) drawTiles(screen *ebiten.Image, lvl *levels.Level, cam camera) {
	const size = float32(common.TileSize)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			tile := lvl.Tile(0, x, y)
			if tile == 0 {
				continue
			}
			clr := colornames.Darkslateblue
			if tile == levels.SolidTile {
				clr = colornames.Slategray
			}
			sx, sy := cam.toScreen(float64(x)*common.TileSize, float64(lvl.Height-y)*common.TileSize)
			vector.FillRect(screen, sx, sy, size, size, clr, false)
		}
	}
}

func (r *renderer) drawSprites(screen *ebiten.Image, w *ecs.World, cam camera, alpha float64) {
	type item struct {
		e ecs.Entity
		t *component.Transform
		s *component.Sprite
	}
	var items []item
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		items = append(items, item{e: e, t: t, s: s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		x, y := it.t.Lerp(alpha)
		sx, sy := cam.toScreen(x-it.s.Width/2, y+it.s.Height/2)
		wpx, hpx := float32(it.s.Width), float32(it.s.Height)
		vector.FillRect(screen, sx, sy, wpx, hpx, it.s.Color, false)

		// The frame index shades a band across the sprite and the facing
		// marker shows the look direction.
		band := float32(it.s.TileIndex%8) / 8 * hpx
		vector.FillRect(screen, sx, sy+band, wpx, hpx/8, color.RGBA{A: 0x50}, false)
		ex := sx + wpx*0.65
		if it.t.ScaleX < 0 {
			ex = sx + wpx*0.15
		}
		vector.FillRect(screen, ex, sy+hpx*0.2, wpx*0.2, hpx*0.15, colornames.White, false)
	}
}

func (r *renderer) drawColliders(screen *ebiten.Image, w *ecs.World, cam camera) {
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, t *component.Transform) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		clr := colornames.Lime
		if tr, ok := ecs.Get(w, e, component.TriggerComponent.Kind()); ok {
			clr = colornames.Yellow
			if tr.Inside {
				clr = colornames.Orangered
			}
		}
		sx, sy := cam.toScreen(t.X+col.Box.L, t.Y+col.Box.T)
		vector.StrokeRect(screen, sx, sy, float32(col.Box.R-col.Box.L), float32(col.Box.T-col.Box.B), 1, clr, false)
	})
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
