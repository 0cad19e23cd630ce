package main

import (
	"flag"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config is loaded from ECS_STRESS_* environment variables. Command-line flags
// take precedence.
type Config struct {
	Duration    string  `config:"ECS_STRESS_DURATION"`
	Entities    int     `config:"ECS_STRESS_ENTITIES"`
	Mutations   int     `config:"ECS_STRESS_MUTATIONS"`
	DirectRatio float64 `config:"ECS_STRESS_DIRECT_RATIO"`
	Seed        int64   `config:"ECS_STRESS_SEED"`
	LogLevel    string  `config:"ECS_STRESS_LOG_LEVEL"`
}

// Settings is the validated form of Config.
type Settings struct {
	Duration    time.Duration
	Entities    int
	Mutations   int
	DirectRatio float64
	Seed        int64
	LogLevel    zerolog.Level
}

func defaultConfig() Config {
	return Config{
		Duration:    "10s",
		Entities:    10000,
		Mutations:   100,
		DirectRatio: 0.5,
		Seed:        1,
		LogLevel:    "info",
	}
}

// LoadConfig overlays the environment on the defaults.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "load config from environment")
	}
	return cfg, nil
}

// ParseSettings applies command-line flags on top of cfg and validates the result.
func ParseSettings(cfg Config, fs *flag.FlagSet, args []string) (Settings, error) {
	fs.StringVar(&cfg.Duration, "duration", cfg.Duration, "The total duration the test should run for.")
	fs.IntVar(&cfg.Entities, "entities", cfg.Entities, "The initial number of entities to create.")
	fs.IntVar(&cfg.Mutations, "mutations", cfg.Mutations, "Entities mutated between frames.")
	fs.Float64Var(&cfg.DirectRatio, "direct-ratio", cfg.DirectRatio, "Fraction of mutations that bypass the manager.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error).")
	if err := fs.Parse(args); err != nil {
		return Settings{}, eris.Wrap(err, "parse flags")
	}

	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return Settings{}, eris.Wrapf(err, "invalid duration %q", cfg.Duration)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return Settings{}, eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	if cfg.Entities < 0 || cfg.Mutations < 0 {
		return Settings{}, eris.New("entities and mutations must not be negative")
	}
	if cfg.DirectRatio < 0 || cfg.DirectRatio > 1 {
		return Settings{}, eris.Errorf("direct ratio %v is outside [0, 1]", cfg.DirectRatio)
	}

	return Settings{
		Duration:    duration,
		Entities:    cfg.Entities,
		Mutations:   cfg.Mutations,
		DirectRatio: cfg.DirectRatio,
		Seed:        cfg.Seed,
		LogLevel:    level,
	}, nil
}
