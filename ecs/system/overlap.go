package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// OverlapSystem is the broad-phase: it emits an EventHit for every pair of
// enabled colliders whose world boxes intersect.
type OverlapSystem struct{}

func NewOverlapSystem() *OverlapSystem {
	return &OverlapSystem{}
}

type placedBox struct {
	e   ecs.Entity
	box cp.BB
}

func (s *OverlapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var boxes []placedBox
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, t *component.Transform) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		boxes = append(boxes, placedBox{e: e, box: common.BoxAt(col.Box, cp.Vector{X: t.X, Y: t.Y})})
		col.Dirty = false
	})

	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			pen, ok := common.Overlap(boxes[i].box, boxes[j].box)
			if !ok {
				continue
			}
			w.Events().Push(ecs.Event{Type: EventHit, Data: Hit{A: boxes[i].e, B: boxes[j].e, Penetration: pen}})
		}
	}
}
