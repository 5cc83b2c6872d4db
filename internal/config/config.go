// Package config loads application configuration from an optional YAML
// file, environment variables, and defaults, in that order of
// precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top level application configuration.
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GameConfig holds the economic constants of a game.
type GameConfig struct {
	StartingCash int `mapstructure:"starting_cash"`
	GoSalary     int `mapstructure:"go_salary"`
	JailFine     int `mapstructure:"jail_fine"`
	JailMaxTurns int `mapstructure:"jail_max_turns"`
}

// SimulationConfig drives the automated game runner.
type SimulationConfig struct {
	Players  []string `mapstructure:"players"`
	MaxTurns int      `mapstructure:"max_turns"`
	Seed     int64    `mapstructure:"seed"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given path. A missing file is not
// an error; defaults and HABERE_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("game.starting_cash", 1500)
	v.SetDefault("game.go_salary", 200)
	v.SetDefault("game.jail_fine", 50)
	v.SetDefault("game.jail_max_turns", 3)

	v.SetDefault("simulation.players", []string{"Alice", "Bob"})
	v.SetDefault("simulation.max_turns", 60)
	v.SetDefault("simulation.seed", 1)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("HABERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Game.StartingCash <= 0 {
		return fmt.Errorf("game.starting_cash must be positive, got %d", c.Game.StartingCash)
	}
	if c.Game.JailMaxTurns <= 0 {
		return fmt.Errorf("game.jail_max_turns must be positive, got %d", c.Game.JailMaxTurns)
	}
	if len(c.Simulation.Players) < 2 {
		return fmt.Errorf("simulation.players needs at least 2 entries, got %d", len(c.Simulation.Players))
	}
	if c.Simulation.MaxTurns <= 0 {
		return fmt.Errorf("simulation.max_turns must be positive, got %d", c.Simulation.MaxTurns)
	}
	return nil
}
