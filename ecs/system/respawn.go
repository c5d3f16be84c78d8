package system

import (
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// RespawnSystem counts down death markers and emits EventRespawn when one
// expires. The session owns the actual respawn.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DeathMarkerComponent.Kind(), func(e ecs.Entity, m *component.DeathMarker) {
		if m.TicksLeft > 0 {
			m.TicksLeft--
		}
		if m.TicksLeft == 0 {
			w.Events().Push(ecs.Event{Type: EventRespawn, Data: e})
		}
	})
}
