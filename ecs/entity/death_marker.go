package entity

import (
	"fmt"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// NewDeathMarker places the death animation at (x, y). ticks overrides the
// prefab countdown when positive.
func NewDeathMarker(w *ecs.World, x, y float64, ticks int) (ecs.Entity, error) {
	e, err := BuildEntity(w, "death_marker.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("death marker: override transform: %w", err)
	}
	if ticks > 0 {
		if m, ok := ecs.Get(w, e, component.DeathMarkerComponent.Kind()); ok {
			m.TicksLeft = ticks
		}
	}
	return e, nil
}
