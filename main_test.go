package main

import (
	"os"
	"pacman/config"
	"pacman/experiments/metrics"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	noOverride := func(*config.Config) {}

	t.Run("unknown profile mode is an error", func(t *testing.T) {
		_, err := run("", "", "gpu", noOverride)
		require.Error(t, err)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		_, err := run(filepath.Join(t.TempDir(), "missing.yaml"), "", "", noOverride)
		require.Error(t, err)
	})

	t.Run("unknown experiment is an error", func(t *testing.T) {
		_, err := run("", "tournament", "", noOverride)
		require.Error(t, err)
	})

	t.Run("overrides apply before the run", func(t *testing.T) {
		output := t.TempDir()
		dir, err := run("", "", "", func(cfg *config.Config) {
			cfg.Layout = "testClassic"
			cfg.Output = output
			cfg.MaxMoves = 50
			cfg.Agents = []metrics.AgentConfig{{ID: 1, Strategy: "reflex", Evaluator: "reflex"}}
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "game_records.csv"))
		require.NoError(t, err, "Records should be written under the overridden output")
	})
}
