package entity

import (
	"fmt"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

const PlayerName = "player"

// NewPlayer builds the player prefab. A non-nil params is shared with the
// caller, so replacing its contents retunes the live player.
func NewPlayer(w *ecs.World, params *component.CharPhysicsParams) (ecs.Entity, error) {
	e, err := buildEntity(w, &buildContext{PrefabPath: "player.yaml", Params: params})
	if err != nil {
		return 0, err
	}
	ecs.SetName(w, e, PlayerName)
	return e, nil
}

func NewPlayerAt(w *ecs.World, params *component.CharPhysicsParams, x, y float64) (ecs.Entity, error) {
	entity, err := NewPlayer(w, params)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
