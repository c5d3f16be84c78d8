package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/wallrun/ecs/system"
	"github.com/milk9111/wallrun/game"
)

// App adapts a game session to ebiten. Update runs once per frame and
// steps the simulation as many fixed ticks as wall time allows.
type App struct {
	game     *game.Game
	input    *EbitenInput
	music    *jukebox
	render   *renderer
	overlay  *overlay
	logger   *zap.Logger
	step     *game.FixedStep
	last     time.Time
	width    int
	height   int
	debug    bool
	copyable bool
	quit     bool
}

func NewApp(g *game.Game, input *EbitenInput, music *jukebox, width, height int, debug bool, logger *zap.Logger) *App {
	a := &App{
		game:   g,
		input:  input,
		music:  music,
		render: newRenderer(width, height, debug),
		logger: logger,
		step:   game.NewFixedStep(60),
		width:  width,
		height: height,
		debug:  debug,
	}
	a.overlay = newOverlay(width, height, func() { a.quit = true })
	if debug {
		if err := clipboard.Init(); err != nil {
			logger.Warn("clipboard unavailable", zap.Error(err))
		} else {
			a.copyable = true
		}
	}
	return a
}

func (a *App) Update() error {
	now := time.Now()
	if a.last.IsZero() {
		a.last = now.Add(-a.step.Step())
	}
	elapsed := now.Sub(a.last)
	a.last = now

	a.input.BeginFrame()
	if a.game.Mode() != game.ModeCredits && a.input.JustPressed(system.ActionQuit) {
		a.quit = true
	}
	if a.debug && inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.copyState()
	}

	for n := a.step.Advance(elapsed); n > 0; n-- {
		a.game.Tick()
	}
	a.music.Update()

	a.overlay.Sync(a.game.Mode())
	a.overlay.Update()

	if a.quit || a.game.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) copyState() {
	state := a.game.PlayerState()
	if !a.copyable {
		a.logger.Info("player state", zap.String("state", state))
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(state))
	a.logger.Info("player state copied to clipboard")
}

func (a *App) Draw(screen *ebiten.Image) {
	a.render.Draw(screen, a.game, a.step.Alpha())
	a.overlay.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
