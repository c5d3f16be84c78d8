package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/ecs/entity"
	"github.com/milk9111/wallrun/ecs/system"
)

const screenSize = 256

// clipViewer plays the animator clips of one prefab through the same
// animation system the game runs. Tab cycles clips, R restarts the current one.
type clipViewer struct {
	world  *ecs.World
	entity ecs.Entity
	names  []string
	index  int
}

func newClipViewer(prefab string) (*clipViewer, error) {
	w := ecs.NewWorld()
	w.AddSystem(system.NewAnimationSystem())

	e, err := entity.BuildEntity(w, prefab)
	if err != nil {
		return nil, err
	}
	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("%s has no animator", prefab)
	}
	if !ecs.Has(w, e, component.SpriteComponent.Kind()) {
		return nil, fmt.Errorf("%s has no sprite", prefab)
	}

	v := &clipViewer{world: w, entity: e}
	for name := range anim.Clips {
		v.names = append(v.names, name)
	}
	sort.Strings(v.names)
	if anim.Current != nil {
		v.index = sort.SearchStrings(v.names, anim.Current.Name)
	}
	return v, nil
}

func (v *clipViewer) animator() *component.Animator {
	anim, _ := ecs.Get(v.world, v.entity, component.AnimatorComponent.Kind())
	return anim
}

func (v *clipViewer) Update() error {
	anim := v.animator()
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(v.names) > 0 {
		v.index = (v.index + 1) % len(v.names)
		anim.Play(v.names[v.index])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		anim.Elapsed = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.world.Update()
	return nil
}

func (v *clipViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	sprite, ok := ecs.Get(v.world, v.entity, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	scale := float32(4)
	fw, fh := float32(sprite.Width)*scale, float32(sprite.Height)*scale
	sx := (screenSize - fw) / 2
	sy := (screenSize - fh) / 2
	vector.FillRect(screen, sx, sy, fw, fh, sprite.Color, false)
	band := float32(sprite.TileIndex%8) / 8 * fh
	vector.FillRect(screen, sx, sy+band, fw, fh/8, color.RGBA{A: 0x50}, false)

	anim := v.animator()
	name := "-"
	if anim.Current != nil {
		name = anim.Current.Name
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("clip %s  frame %d  done %v\n[tab] next  [r] restart", name, sprite.TileIndex, anim.Done()))
}

func (v *clipViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "prefab with sprite and animator components")
	flag.Parse()

	v, err := newClipViewer(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenSize*2, screenSize*2)
	ebiten.SetWindowTitle("clips: " + *prefab)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
