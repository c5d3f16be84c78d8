package system

import (
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// gridFromRows builds a grid where '#' is solid. rows[0] is the top row.
type rowGrid []string

func gridFromRows(rows ...string) rowGrid {
	return rowGrid(rows)
}

func (g rowGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g rowGrid) Height() int { return len(g) }

func (g rowGrid) Solid(x, y int) bool {
	return g[y][x] == '#'
}

func emptyGrid(w, h int) rowGrid {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}

type scriptedInput struct {
	held    map[Action]bool
	pressed map[Action]bool
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{held: map[Action]bool{}, pressed: map[Action]bool{}}
}

func (s *scriptedInput) Held(a Action) bool        { return s.held[a] }
func (s *scriptedInput) JustPressed(a Action) bool { return s.pressed[a] }

type recordingQueue struct {
	texts []string
	selfs []ecs.Entity
	runs  int
}

func (q *recordingQueue) Enqueue(text string, self ecs.Entity) {
	q.texts = append(q.texts, text)
	q.selfs = append(q.selfs, self)
}

func (q *recordingQueue) Run() { q.runs++ }

type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(name string) {
	r.played = append(r.played, name)
}

// spawnTestCharacter creates a 20x28 player at (x, y) with default clips.
func spawnTestCharacter(w *ecs.World, params *component.CharPhysicsParams, x, y float64) (ecs.Entity, *component.Character) {
	e := ecs.CreateEntity(w)
	c := component.NewCharacter(params)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, PrevX: x, PrevY: y, ScaleX: 1})
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Box: common.CenteredBox(20, 28)})
	_ = ecs.Add(w, e, component.CharacterComponent.Kind(), c)
	_ = ecs.Add(w, e, component.AnimatorComponent.Kind(), &component.Animator{Clips: component.DefaultClips()})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: 20, Height: 28})
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	return e, c
}

func position(w *ecs.World, e ecs.Entity) cp.Vector {
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	return cp.Vector{X: t.X, Y: t.Y}
}
