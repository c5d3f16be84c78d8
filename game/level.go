package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/ecs/entity"
	"github.com/milk9111/wallrun/levels"
)

// levelInstance is one level living in the world.
type levelInstance struct {
	path     string
	level    *levels.Level
	grid     *levels.Grid
	entities *entity.LevelEntities
	state    levels.State
}

func (l *levelInstance) initialize(w *ecs.World, logger *zap.Logger) error {
	if l.state != levels.Preloaded {
		return fmt.Errorf("level %s: initialize from state %s", l.path, l.state)
	}
	logger.Info("initialize level", zap.String("level", l.path))
	ents, err := entity.LoadLevelToWorld(w, l.path, l.level, logger)
	if err != nil {
		return err
	}
	l.entities = ents
	l.grid = levels.NewGrid(l.level)
	l.state = levels.Initialized
	return nil
}

func (l *levelInstance) start(w *ecs.World, logger *zap.Logger) error {
	if !l.state.CanStart() {
		return fmt.Errorf("level %s: start from state %s", l.path, l.state)
	}
	logger.Info("start level", zap.String("level", l.path))
	ecs.SetEnabled(w, l.entities.Root, true)
	l.state = levels.Started
	return nil
}

func (l *levelInstance) stop(w *ecs.World, logger *zap.Logger) {
	if l.state != levels.Started {
		return
	}
	logger.Info("stop level", zap.String("level", l.path))
	ecs.SetEnabled(w, l.entities.Root, false)
	l.state = levels.Stopped
}

func (l *levelInstance) teardown(w *ecs.World) {
	if l.state == levels.TornDown {
		return
	}
	if l.entities != nil {
		ecs.DestroyEntity(w, l.entities.Root)
	}
	l.state = levels.TornDown
}

// switchLevel makes path the current level and places the player at spawn.
// Switching to the current level restarts it in place. On error the current
// level keeps running.
func (g *Game) switchLevel(path, spawn string) error {
	next := g.current
	if next == nil || next.path != path {
		lvl, err := g.registry.Get(path)
		if err != nil {
			return err
		}
		next = &levelInstance{path: path, level: lvl, state: levels.Preloaded}
		if err := next.initialize(g.world, g.logger); err != nil {
			return err
		}
	}

	if g.current != nil {
		g.current.stop(g.world, g.logger)
		if g.current != next {
			g.current.teardown(g.world)
		}
	}
	g.current = next
	return g.startLevel(spawn)
}

// reloadLevel rebuilds the current level from a fresh copy of its file and
// restarts it at the current spawn.
func (g *Game) reloadLevel() error {
	if g.current == nil {
		return nil
	}
	lvl, err := g.registry.Reload(g.current.path)
	if err != nil {
		return err
	}
	next := &levelInstance{path: g.current.path, level: lvl, state: levels.Preloaded}
	if err := next.initialize(g.world, g.logger); err != nil {
		return err
	}
	g.current.stop(g.world, g.logger)
	g.current.teardown(g.world)
	g.current = next
	return g.startLevel(g.spawn)
}

func (g *Game) startLevel(spawn string) error {
	lvl := g.current
	if err := lvl.start(g.world, g.logger); err != nil {
		return err
	}

	g.tiles.SetGrid(lvl.grid)
	*g.params = *g.base.WithFeatures(
		lvl.level.BoolProp("double_jump", true),
		lvl.level.BoolProp("dash", true),
		lvl.level.BoolProp("wall_jump", true),
	)
	g.playLevelMusic(lvl.level.StringProp("music", ""))

	g.clearDeath()
	g.spawn = spawn
	if err := g.placePlayer(); err != nil {
		return err
	}
	g.triggers.Suppress = true
	g.mode = ModePlay
	return nil
}

func (g *Game) playLevelMusic(track string) {
	if g.music == nil || track == g.track {
		return
	}
	g.track = track
	if track == "" {
		g.music.StopMusic()
		return
	}
	g.music.PlayMusic(track)
}

// placePlayer puts the player, creating it if needed, at the current spawn
// with a fresh controller state. An unknown spawn leaves the player where it
// is.
func (g *Game) placePlayer() error {
	if !ecs.IsAlive(g.world, g.player) {
		p, err := entity.NewPlayer(g.world, g.params)
		if err != nil {
			return fmt.Errorf("spawn player: %w", err)
		}
		g.player = p
	}
	ecs.SetEnabled(g.world, g.player, true)

	if c, ok := ecs.Get(g.world, g.player, component.CharacterComponent.Kind()); ok {
		c.Reset()
	}
	if anim, ok := ecs.Get(g.world, g.player, component.AnimatorComponent.Kind()); ok {
		anim.Play(component.ClipIdle)
	}
	if col, ok := ecs.Get(g.world, g.player, component.ColliderComponent.Kind()); ok {
		col.Dirty = true
	}

	spawn, n := g.current.entities.Lookup(g.world, g.spawn)
	if n == 0 {
		g.logger.Error("spawn not found", zap.String("spawn", g.spawn), zap.String("level", g.current.path))
		return nil
	}
	if n > 1 {
		g.logger.Warn("more than one spawn found", zap.String("spawn", g.spawn), zap.Int("count", n))
	}
	t, ok := ecs.Get(g.world, spawn, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	return entity.SetEntityTransform(g.world, g.player, t.X, t.Y)
}

func (g *Game) clearDeath() {
	if ecs.IsAlive(g.world, g.marker) {
		ecs.DestroyEntity(g.world, g.marker)
	}
	g.marker = 0
}
