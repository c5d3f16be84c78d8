package system

import (
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// TransformSnapshotSystem stores every position as the previous one so the
// renderer can interpolate across the tick.
type TransformSnapshotSystem struct{}

func NewTransformSnapshotSystem() *TransformSnapshotSystem {
	return &TransformSnapshotSystem{}
}

func (s *TransformSnapshotSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.TransformComponent.Kind(), func(_ ecs.Entity, t *component.Transform) {
		t.Snapshot()
	})
}
