package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/milk9111/wallrun/config"
	"github.com/milk9111/wallrun/levels"
	"github.com/milk9111/wallrun/prefabs"
)

func main() {
	dir := flag.String("dir", "", "level directory (default: embedded levels)")
	spawn := flag.String("spawn", config.Defaults().Game.Spawn, "spawn used by next-level without a spawn argument")
	flag.Parse()

	logger, err := config.NewLogger(config.Defaults().Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var fsys fs.FS = levels.LevelsFS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	names := flag.Args()
	if len(names) == 0 {
		names, err = fs.Glob(fsys, "*.json")
		if err != nil {
			logger.Fatal("cannot list levels", zap.Error(err))
		}
	}

	problems := Check(fsys, names, prefabs.LoadScript, *spawn)
	for _, p := range problems {
		logger.Warn(p.Message,
			zap.String("level", p.Level),
			zap.String("object", p.Object),
			zap.String("command", p.Command),
		)
	}
	logger.Info("levels checked", zap.Int("levels", len(names)), zap.Int("problems", len(problems)))
	if len(problems) > 0 {
		os.Exit(1)
	}
}
