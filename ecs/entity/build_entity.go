package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/prefabs"
)

type buildContext struct {
	PrefabPath string
	// Params, when set, replaces the character profile of the prefab so every
	// character built with it shares one profile.
	Params *component.CharPhysicsParams
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"spawn_point":  addSpawnPoint,
	"transform":    addTransform,
	"collider":     addCollider,
	"sprite":       addSprite,
	"character":    addCharacter,
	"animator":     addAnimator,
	"trigger":      addTrigger,
	"death_marker": addDeathMarker,
}

var componentBuildOrder = []string{
	"player_tag",
	"spawn_point",
	"transform",
	"collider",
	"sprite",
	"character",
	"animator",
	"trigger",
	"death_marker",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return buildEntity(w, &buildContext{PrefabPath: prefabPath})
}

func buildEntity(w *ecs.World, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	prefabPath := ctx.PrefabPath

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	if spec.Name != "" {
		ecs.SetName(w, e, spec.Name)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// SetEntityTransform places an entity without interpolating from its old
// position.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1}
	}
	t.MoveTo(x, y)
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addSpawnPoint(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := &component.Transform{ScaleX: 1}
	t.MoveTo(spec.X, spec.Y)
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("collider size %gx%g is negative", spec.Width, spec.Height)
	}
	box := common.BoxAt(common.CenteredBox(spec.Width, spec.Height), cp.Vector{X: spec.OffsetX, Y: spec.OffsetY})
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Box: box, Dirty: true})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		TileIndex: spec.TileIndex,
		Width:     spec.Width,
		Height:    spec.Height,
		Color:     spec.Color.ToRGBA(),
	})
}

type characterSpec = prefabs.CharacterComponentSpec

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	params := ctx.Params
	if params == nil {
		spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
		if err != nil {
			return fmt.Errorf("decode character spec: %w", err)
		}
		params = spec.Physics.Params()
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), component.NewCharacter(params))
}

type animatorSpec = prefabs.AnimatorComponentSpec

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	anim := &component.Animator{Clips: spec.ClipSet()}
	initial := spec.Initial
	if initial == "" {
		initial = component.ClipIdle
	}
	if _, ok := anim.Clips[initial]; !ok {
		return fmt.Errorf("initial clip %q not defined", initial)
	}
	anim.Play(initial)
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), anim)
}

type triggerSpec = prefabs.TriggerComponentSpec

func addTrigger(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[triggerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trigger spec: %w", err)
	}
	return ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		OnEnter: spec.OnEnter,
		OnExit:  spec.OnExit,
		OnUse:   spec.OnUse,
	})
}

type deathMarkerSpec = prefabs.DeathMarkerComponentSpec

func addDeathMarker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[deathMarkerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode death_marker spec: %w", err)
	}
	return ecs.Add(w, e, component.DeathMarkerComponent.Kind(), &component.DeathMarker{TicksLeft: spec.Ticks})
}
