package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1500, cfg.Game.StartingCash)
	assert.Equal(t, 200, cfg.Game.GoSalary)
	assert.Equal(t, 50, cfg.Game.JailFine)
	assert.Equal(t, 3, cfg.Game.JailMaxTurns)

	assert.Equal(t, []string{"Alice", "Bob"}, cfg.Simulation.Players)
	assert.Equal(t, 60, cfg.Simulation.MaxTurns)
	assert.Equal(t, int64(1), cfg.Simulation.Seed)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1500, cfg.Game.StartingCash)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
game:
  starting_cash: 2000
  jail_fine: 75
simulation:
  players: ["Cara", "Dan", "Eve"]
  max_turns: 120
  seed: 99
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Game.StartingCash)
	assert.Equal(t, 75, cfg.Game.JailFine)
	assert.Equal(t, 200, cfg.Game.GoSalary, "unset keys keep defaults")
	assert.Equal(t, []string{"Cara", "Dan", "Eve"}, cfg.Simulation.Players)
	assert.Equal(t, 120, cfg.Simulation.MaxTurns)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"non-positive starting cash", "game:\n  starting_cash: 0\n"},
		{"non-positive jail turns", "game:\n  jail_max_turns: -1\n"},
		{"too few players", "simulation:\n  players: [\"Solo\"]\n"},
		{"non-positive max turns", "simulation:\n  max_turns: 0\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(c.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
