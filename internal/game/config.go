package game

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/samdwyer/nuzlocke/internal/entity"
)

// Config holds planner configuration read from the environment.
type Config struct {
	// Generation selects the reference tables. Only 1 is bundled.
	Generation int `env:"NUZLOCKE_GENERATION" envDefault:"1"`
	// DataDir replaces the bundled tables with gen{N}_pokemon.yaml and
	// gen{N}_moves.yaml from this directory.
	DataDir    string `env:"NUZLOCKE_DATA_DIR"`
	RosterFile string `env:"NUZLOCKE_ROSTER" envDefault:"roster.yaml"`

	DefenderSpecies string `env:"NUZLOCKE_DEFENDER"`
	DefenderLevel   int    `env:"NUZLOCKE_DEFENDER_LEVEL" envDefault:"50"`

	LogLevel string `env:"NUZLOCKE_LOG_LEVEL" envDefault:"info"`
	// LogFile receives logs while the interactive planner owns the terminal.
	LogFile string `env:"NUZLOCKE_LOG_FILE"`
	Locale   string `env:"NUZLOCKE_LOCALE" envDefault:"en"`

	TelemetryEnabled bool              `env:"NUZLOCKE_TELEMETRY" envDefault:"false"`
	OTLPEndpoint     string            `env:"NUZLOCKE_OTLP_ENDPOINT"`
	OTLPHeaders      map[string]string `env:"NUZLOCKE_OTLP_HEADERS"` // key:value,key:value
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	if c.Generation < 1 {
		return fmt.Errorf("generation %d must be positive", c.Generation)
	}
	if c.DefenderLevel < entity.MinLevel || c.DefenderLevel > entity.MaxLevel {
		return fmt.Errorf("defender level %d outside [%d,%d]", c.DefenderLevel, entity.MinLevel, entity.MaxLevel)
	}
	if _, err := c.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses LogLevel.
func (c Config) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
