package game

import (
	"path"

	"go.uber.org/zap"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/system"
	"github.com/milk9111/wallrun/script"
)

// boundarySystem runs last in the tick. It applies the changes commands may
// only request: respawns, level switches and hot reloads.
type boundarySystem struct {
	game *Game
}

func (s *boundarySystem) Update(w *ecs.World) {
	g := s.game

	for _, evt := range w.Events().Drain(system.EventRespawn) {
		marker, _ := evt.Data.(ecs.Entity)
		g.respawn(marker)
	}

	if change := g.pending; change != nil {
		g.pending = nil
		if err := g.switchLevel(change.path, change.spawn); err != nil {
			g.logger.Error("cannot change level", zap.String("level", change.path), zap.String("spawn", change.spawn), zap.Error(err))
		} else {
			g.interp.Clear()
		}
		if g.interp.State().Reason == script.ReasonLevelChange {
			g.interp.Resume()
		}
	}

	g.pollWatcher()
}

func (g *Game) respawn(marker ecs.Entity) {
	if marker != g.marker || g.mode != ModeDeath {
		if ecs.IsAlive(g.world, marker) {
			ecs.DestroyEntity(g.world, marker)
		}
		return
	}
	g.clearDeath()
	if err := g.placePlayer(); err != nil {
		g.logger.Error("respawn failed", zap.Error(err))
	}
	g.mode = ModePlay
	g.logger.Info("player respawned", zap.String("spawn", g.spawn))

	if g.interp.State().Reason == script.ReasonRespawn {
		g.interp.Resume()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil || g.current == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if name != path.Base(g.current.path) {
			continue
		}
		if err := g.reloadLevel(); err != nil {
			g.logger.Error("level reload failed", zap.String("level", g.current.path), zap.Error(err))
			continue
		}
		g.logger.Info("level reloaded", zap.String("level", g.current.path))
	}
}
