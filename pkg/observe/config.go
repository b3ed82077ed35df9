package observe

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config controls the observer built by Build. The zero value enables
// slog emission at LevelInfo.
type Config struct {
	// Disabled turns instrumentation off entirely.
	Disabled bool `env:"UNIVERSE_OBSERVE_DISABLED"`
	// Level is the minimum severity forwarded to the logger.
	Level slog.Level `env:"UNIVERSE_OBSERVE_LEVEL" envDefault:"INFO"`
}

// FromEnv loads Config from UNIVERSE_OBSERVE_* environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("observe: parse env: %w", err)
	}
	return cfg, nil
}

// Build constructs the observer described by the config: Discard when
// disabled, otherwise a level-gated SlogObserver. A nil logger means
// slog.Default.
func (c Config) Build(logger *slog.Logger) Observer {
	if c.Disabled {
		return Discard
	}
	return MinLevel(NewSlog(logger), c.Level)
}
