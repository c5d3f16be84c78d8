package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/levels"
)

// LevelEntities is the entity tree of one loaded level. Object names are not
// unique, so lookups keep every match.
type LevelEntities struct {
	Root    ecs.Entity
	Objects ecs.Entity
	names   map[string][]ecs.Entity
}

// Lookup returns the first live entity with the given name and how many
// live entities share it.
func (l *LevelEntities) Lookup(w *ecs.World, name string) (ecs.Entity, int) {
	if l == nil {
		return 0, 0
	}
	var first ecs.Entity
	count := 0
	for _, e := range l.names[name] {
		if !ecs.IsAlive(w, e) {
			continue
		}
		if count == 0 {
			first = e
		}
		count++
	}
	return first, count
}

// LoadLevelToWorld creates the level root (disabled) with a child per spawn
// and trigger object. Objects that cannot be built are logged and skipped.
func LoadLevelToWorld(w *ecs.World, path string, lvl *levels.Level, logger *zap.Logger) (*LevelEntities, error) {
	if w == nil {
		return nil, fmt.Errorf("load level: world is nil")
	}
	if lvl == nil {
		return nil, fmt.Errorf("load level: %s: level is nil", path)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	root := ecs.CreateEntity(w)
	ecs.SetName(w, root, path)
	if err := ecs.Add(w, root, component.LevelRootComponent.Kind(), &component.LevelRoot{Path: path}); err != nil {
		ecs.DestroyEntity(w, root)
		return nil, fmt.Errorf("load level: %s: %w", path, err)
	}
	ecs.SetEnabled(w, root, false)

	objects := ecs.CreateEntity(w)
	ecs.SetName(w, objects, "objects")
	ecs.SetParent(w, objects, root)

	out := &LevelEntities{Root: root, Objects: objects, names: make(map[string][]ecs.Entity)}

	for _, obj := range lvl.Objects {
		var (
			e   ecs.Entity
			err error
		)
		switch obj.Type {
		case levels.ObjectSpawn:
			e, err = newSpawnPoint(w, lvl, obj)
		case levels.ObjectTrigger:
			e, err = newTrigger(w, lvl, obj)
		default:
			err = fmt.Errorf("unknown object type")
		}
		if err != nil {
			logger.Warn("failed to load level object",
				zap.String("level", path),
				zap.String("name", obj.Name),
				zap.String("type", obj.Type),
				zap.Error(err))
			continue
		}
		ecs.SetName(w, e, obj.Name)
		ecs.SetParent(w, e, objects)
		out.names[obj.Name] = append(out.names[obj.Name], e)
	}

	return out, nil
}

func newSpawnPoint(w *ecs.World, lvl *levels.Level, obj levels.Object) (ecs.Entity, error) {
	e, err := BuildEntity(w, "spawn_point.yaml")
	if err != nil {
		return 0, err
	}
	center := lvl.WorldBox(obj).Center()
	if err := SetEntityTransform(w, e, center.X, center.Y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

// newTrigger sizes the trigger prefab to the object rectangle, grown by the
// optional margin property.
func newTrigger(w *ecs.World, lvl *levels.Level, obj levels.Object) (ecs.Entity, error) {
	e, err := BuildEntity(w, "trigger.yaml")
	if err != nil {
		return 0, err
	}

	box := lvl.WorldBox(obj)
	center := box.Center()
	margin := obj.FloatProp("margin", 0)
	local := common.Inflate(common.BoxAt(box, cp.Vector{X: -center.X, Y: -center.Y}), margin)

	if err := SetEntityTransform(w, e, center.X, center.Y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		col.Box = local
	}
	if t, ok := ecs.Get(w, e, component.TriggerComponent.Kind()); ok {
		t.OnEnter = obj.StringProp("on_enter", t.OnEnter)
		t.OnExit = obj.StringProp("on_exit", t.OnExit)
		t.OnUse = obj.StringProp("on_use", t.OnUse)
	}
	ecs.SetEnabled(w, e, obj.BoolProp("enabled", true))
	return e, nil
}
