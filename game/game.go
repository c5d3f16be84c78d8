package game

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/ecs/entity"
	"github.com/milk9111/wallrun/ecs/system"
	"github.com/milk9111/wallrun/levels"
	"github.com/milk9111/wallrun/prefabs"
	"github.com/milk9111/wallrun/script"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModePlay Mode = iota
	ModeDeath
	ModeCredits
)

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModeDeath:
		return "death"
	case ModeCredits:
		return "credits"
	}
	return "unknown"
}

// MusicPlayer loops one background track at a time.
type MusicPlayer interface {
	PlayMusic(name string)
	StopMusic()
}

type Options struct {
	Logger *zap.Logger
	Input  system.InputSource
	Sounds system.SoundPlayer
	Music  MusicPlayer
	// Levels defaults to a registry over the working tree and embedded levels.
	Levels *levels.Registry
	// Physics is the base player profile. Levels derive the live profile
	// from it. Defaults to the built-in profile.
	Physics      *component.CharPhysicsParams
	Skin         float64
	TouchPolicy  system.TouchPolicy
	DeathTicks   int
	DefaultSpawn string
}

// Game owns the world and everything that outlives a single level: the
// player, the command interpreter and the shared physics profile.
type Game struct {
	world    *ecs.World
	logger   *zap.Logger
	interp   *script.Interpreter
	registry *levels.Registry
	music    MusicPlayer
	input    system.InputSource

	tiles    *system.TileCollisionSystem
	triggers *system.TriggerSystem

	base   component.CharPhysicsParams
	params *component.CharPhysicsParams
	player ecs.Entity

	current      *levelInstance
	spawn        string
	defaultSpawn string
	pending      *levelChange
	watcher      *levels.Watcher

	mode       Mode
	deathTicks int
	marker     ecs.Entity
	track      string
	finished   bool
}

type levelChange struct {
	path  string
	spawn string
}

func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Levels
	if registry == nil {
		registry = levels.NewRegistry(nil)
	}
	base := opts.Physics
	if base == nil {
		base = component.DefaultCharPhysicsParams()
	}
	deathTicks := opts.DeathTicks
	if deathTicks <= 0 {
		deathTicks = 60
	}
	defaultSpawn := opts.DefaultSpawn
	if defaultSpawn == "" {
		defaultSpawn = "start"
	}
	params := *base

	g := &Game{
		world:        ecs.NewWorld(),
		logger:       logger,
		registry:     registry,
		music:        opts.Music,
		input:        opts.Input,
		base:         *base,
		params:       &params,
		deathTicks:   deathTicks,
		defaultSpawn: defaultSpawn,
	}
	g.interp = script.NewInterpreter(g, logger.Named("script"))
	g.tiles = system.NewTileCollisionSystem(opts.Skin, opts.TouchPolicy)
	g.triggers = system.NewTriggerSystem(g.interp, opts.Input)

	g.world.AddSystem(system.NewTransformSnapshotSystem())
	g.world.AddSystem(system.NewInputSystem(opts.Input))
	g.world.AddSystem(system.NewCharacterControllerSystem())
	g.world.AddSystem(system.NewAnimationSystem())
	g.world.AddSystem(g.tiles)
	g.world.AddSystem(system.NewOverlapSystem())
	g.world.AddSystem(g.triggers)
	g.world.AddSystem(system.NewCommandSystem(g.interp))
	g.world.AddSystem(system.NewRespawnSystem())
	g.world.AddSystem(system.NewSoundSystem(opts.Sounds))
	g.world.AddSystem(&boundarySystem{game: g})

	return g
}

// Start loads the first level and spawns the player in it.
func (g *Game) Start(path, spawn string) error {
	if spawn == "" {
		spawn = g.defaultSpawn
	}
	if err := g.switchLevel(path, spawn); err != nil {
		return fmt.Errorf("game: start: %w", err)
	}
	return nil
}

// Tick advances the simulation by one fixed step.
func (g *Game) Tick() {
	if g.finished {
		return
	}
	if g.mode == ModeCredits {
		if g.input != nil && (g.input.JustPressed(system.ActionJump) || g.input.JustPressed(system.ActionQuit)) {
			g.finished = true
		}
		return
	}
	g.world.Update()
}

// Watch enables hot reload of the current level from w.
func (g *Game) Watch(w *levels.Watcher) {
	g.watcher = w
}

func (g *Game) World() *ecs.World               { return g.world }
func (g *Game) Interpreter() *script.Interpreter { return g.interp }
func (g *Game) Player() ecs.Entity               { return g.player }
func (g *Game) Mode() Mode                       { return g.mode }
func (g *Game) Spawn() string                    { return g.spawn }

// Finished reports that the credits were dismissed.
func (g *Game) Finished() bool { return g.finished }

// Params is the live physics profile shared by the player.
func (g *Game) Params() *component.CharPhysicsParams { return g.params }

// Level returns the current level data and its path.
func (g *Game) Level() (*levels.Level, string) {
	if g.current == nil {
		return nil, ""
	}
	return g.current.level, g.current.path
}

// Background is the clear color of the current level.
func (g *Game) Background() color.RGBA {
	if g.current == nil {
		return color.RGBA{A: 255}
	}
	return parseColor(g.current.level.StringProp("background", ""), color.RGBA{A: 255})
}

// EndScreen reports whether the current level is the closing screen.
func (g *Game) EndScreen() bool {
	return g.current != nil && g.current.level.BoolProp("end_screen", false)
}

// Entity finds a named object of the current level. A miss is reported by
// the caller.
func (g *Game) Entity(name string) (ecs.Entity, bool) {
	if g.current == nil {
		return 0, false
	}
	e, n := g.current.entities.Lookup(g.world, name)
	if n == 0 {
		return 0, false
	}
	if n > 1 {
		g.logger.Warn("more than one entity found", zap.String("name", name), zap.Int("count", n))
	}
	return e, true
}

func (g *Game) SetSpawn(name string) {
	g.spawn = name
	g.logger.Debug("spawn set", zap.String("spawn", name))
}

func (g *Game) ChangeLevel(path, spawn string) {
	if spawn == "" {
		spawn = g.defaultSpawn
	}
	g.pending = &levelChange{path: path, spawn: spawn}
}

func (g *Game) Disable(e ecs.Entity) {
	ecs.SetEnabled(g.world, e, false)
}

func (g *Game) ShowCredits() {
	g.mode = ModeCredits
	g.logger.Info("credits")
}

func (g *Game) ScriptSource(name string) ([]byte, error) {
	return prefabs.LoadScript(name)
}

// KillPlayer hides the player behind a death marker until the marker
// expires.
func (g *Game) KillPlayer() bool {
	if g.mode != ModePlay || !ecs.IsAlive(g.world, g.player) || !ecs.IsEnabled(g.world, g.player) {
		return false
	}

	t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	marker, err := entity.NewDeathMarker(g.world, t.X, t.Y, g.deathTicks)
	if err != nil {
		g.logger.Error("cannot create death marker", zap.Error(err))
		return false
	}
	if g.current != nil {
		ecs.SetParent(g.world, marker, g.current.entities.Root)
	}

	ecs.SetEnabled(g.world, g.player, false)
	g.marker = marker
	g.mode = ModeDeath
	system.PlaySound(g.world, system.SoundDeath)
	g.logger.Info("player died", zap.Float64("x", t.X), zap.Float64("y", t.Y))
	return true
}

// PlayerState is a one-line dump of the player for debugging.
func (g *Game) PlayerState() string {
	t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	c, ok2 := ecs.Get(g.world, g.player, component.CharacterComponent.Kind())
	if !ok || !ok2 {
		return "no player"
	}
	_, path := g.Level()
	return fmt.Sprintf("level=%s spawn=%s mode=%s pos=(%.2f, %.2f) vel=(%.2f, %.2f) touch=%s jumps=%d dashes=%d dash=%d",
		path, g.spawn, g.mode, t.X, t.Y, c.Velocity.X, c.Velocity.Y, c.Touch.Current, c.JumpCount, c.DashCount, c.DashDuration)
}
