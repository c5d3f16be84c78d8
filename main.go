package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/wallrun/config"
	"github.com/milk9111/wallrun/ecs/system"
	"github.com/milk9111/wallrun/game"
	"github.com/milk9111/wallrun/levels"
	"github.com/milk9111/wallrun/prefabs"
)

func main() {
	configPath := flag.String("config", "", "path to a toml config file")
	levelName := flag.String("level", "", "level file in levels/ (overrides game.start_level)")
	spawn := flag.String("spawn", "", "spawn point name (overrides game.spawn)")
	debug := flag.Bool("debug", false, "enable debug drawing and the F2 state dump")
	hot := flag.Bool("hot", false, "reload the current level when its file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		cfg.Game.StartLevel = *levelName
	}
	if *spawn != "" {
		cfg.Game.Spawn = *spawn
	}
	if *debug {
		cfg.Game.Debug = true
	}
	if *hot {
		cfg.Game.HotReload = true
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("wallrun stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	policy, err := system.ParseTouchPolicy(cfg.Physics.TouchPolicy)
	if err != nil {
		return err
	}
	params, err := prefabs.LoadCharacterPhysics(cfg.Physics.Profile)
	if err != nil {
		return err
	}

	var audioCtx *audio.Context
	if !cfg.Audio.DisableAudio {
		audioCtx = audio.NewContext(cfg.Audio.SampleRate)
	}
	sounds := newSoundBank(audioCtx, cfg.Audio.SoundVolume, logger.Named("audio"))
	music := newJukebox(audioCtx, cfg.Audio.MusicVolume, logger.Named("audio"))
	input := NewEbitenInput()

	g := game.New(game.Options{
		Logger:       logger,
		Input:        input,
		Sounds:       sounds,
		Music:        music,
		Physics:      params,
		Skin:         cfg.Physics.Skin,
		TouchPolicy:  policy,
		DeathTicks:   cfg.Game.DeathTicks,
		DefaultSpawn: cfg.Game.Spawn,
	})
	if err := g.Start(cfg.Game.StartLevel, cfg.Game.Spawn); err != nil {
		return err
	}

	if cfg.Game.Debug && cfg.Game.HotReload {
		w, err := levels.NewWatcher("levels")
		if err != nil {
			logger.Warn("level hot reload disabled", zap.Error(err))
		} else {
			defer w.Close()
			g.Watch(w)
		}
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	app := NewApp(g, input, music, cfg.Window.Width, cfg.Window.Height, cfg.Game.Debug, logger)
	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
