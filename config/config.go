package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Physics PhysicsConfig `toml:"physics"`
	Window  WindowConfig  `toml:"window"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	StartLevel string `toml:"start_level"`
	Spawn      string `toml:"spawn"`
	Debug      bool   `toml:"debug"`
	DeathTicks int    `toml:"death_ticks"` // ticks the death marker stays before respawn
	HotReload  bool   `toml:"hot_reload"`  // watch level files, debug only
}

type PhysicsConfig struct {
	Skin        float64 `toml:"skin"`
	TouchPolicy string  `toml:"touch_policy"` // "strict" or "inclusive"
	Profile     string  `toml:"profile"`      // player prefab holding the physics profile
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
}

type AudioConfig struct {
	SampleRate   int     `toml:"sample_rate"`
	SoundVolume  float64 `toml:"sound_volume"`
	MusicVolume  float64 `toml:"music_volume"`
	DisableAudio bool    `toml:"disable"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			StartLevel: "lvl1.json",
			Spawn:      "start",
			DeathTicks: 60,
		},
		Physics: PhysicsConfig{
			Skin:        0.5,
			TouchPolicy: "strict",
			Profile:     "player.yaml",
		},
		Window: WindowConfig{
			Title:  "wallrun",
			Width:  960,
			Height: 544,
			Scale:  1,
		},
		Audio: AudioConfig{
			SampleRate:  44100,
			SoundVolume: 0.8,
			MusicVolume: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Game.StartLevel == "" {
		return fmt.Errorf("game.start_level is empty")
	}
	if c.Game.DeathTicks <= 0 {
		return fmt.Errorf("game.death_ticks must be positive, got %d", c.Game.DeathTicks)
	}
	if c.Physics.Skin < 0 {
		return fmt.Errorf("physics.skin must not be negative, got %g", c.Physics.Skin)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	return nil
}

func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
