package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides shared by every binary.
type Env struct {
	TuningPath string `env:"SOULCASTER_TUNING"`
	Seed       *int64 `env:"SOULCASTER_SEED"`
	LogLevel   string `env:"SOULCASTER_LOG_LEVEL"`
	Port       int    `env:"SOULCASTER_PORT" envDefault:"2222"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve loads the tuning named by path (or e.TuningPath when path is
// empty) and applies e's overrides. With neither set it uses Default.
func Resolve(path string, e Env) (Tuning, error) {
	if path == "" {
		path = e.TuningPath
	}
	t := Default()
	if path != "" {
		var err error
		if t, err = Load(path); err != nil {
			return t, err
		}
	}
	if e.Seed != nil {
		t.Seed = *e.Seed
	}
	if e.LogLevel != "" {
		t.LogLevel = e.LogLevel
	}
	return t, nil
}
