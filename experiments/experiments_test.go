package experiments

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"pacman/agent"
	"pacman/config"
	"pacman/experiments/metrics"
	"pacman/game"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Name = "test"
	cfg.Layout = "testClassic"
	cfg.Games = 2
	cfg.Seed = 100
	cfg.MaxMoves = 200
	cfg.Parallelism = 2
	cfg.Output = t.TempDir()
	cfg.Agents = []metrics.AgentConfig{
		{ID: 1, Strategy: "reflex", Evaluator: "reflex"},
		{ID: 2, Strategy: "alphabeta", Evaluator: "better", Depth: 1},
	}
	return cfg
}

func TestRun(t *testing.T) {
	t.Run("writing every record", func(t *testing.T) {
		cfg := testConfig(t)

		dir, err := Run(cfg)

		require.NoError(t, err)
		require.Equal(t, filepath.Join(cfg.Output, "test"), filepath.Dir(dir), "Runs should be grouped by name")

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+4, "Header plus two games per agent")
		require.Equal(t, "1", games[1][1], "First games belong to agent 1")
		require.Equal(t, "100", games[1][3], "First game uses the base seed")
		require.Equal(t, "101", games[2][3])
		require.Equal(t, "2", games[3][1])
		require.Equal(t, "100", games[3][3], "Every agent replays the same seeds")

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, configs, 1+2)

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 1, "Pacman's moves should be recorded")

		data, err := os.ReadFile(filepath.Join(dir, "setup.json"))
		require.NoError(t, err)
		var setup metrics.Setup
		require.NoError(t, json.Unmarshal(data, &setup))
		require.Equal(t, filepath.Base(dir), setup.RunID)
		require.Equal(t, "testClassic", setup.Layout)
		require.Equal(t, "random", setup.Ghosts)
		require.Equal(t, 2, setup.NumGames)
	})

	t.Run("rejecting an invalid config", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Ghosts = "clyde"

		_, err := Run(cfg)

		require.ErrorIs(t, err, agent.ErrUnknownGhost)
	})

	t.Run("seeded games replay identically", func(t *testing.T) {
		l, err := game.LookupLayout("minimaxClassic")
		require.NoError(t, err)
		reflex := metrics.AgentConfig{ID: 1, Strategy: "reflex", Evaluator: "reflex"}

		first, firstMoves, err := runGame(l, agent.DirectionalGhostKind, reflex, 5, 100)
		require.NoError(t, err)
		second, secondMoves, err := runGame(l, agent.DirectionalGhostKind, reflex, 5, 100)
		require.NoError(t, err)

		require.Equal(t, first.Outcome, second.Outcome)
		require.Equal(t, first.Score, second.Score)
		require.Equal(t, first.TotalMoves, second.TotalMoves)
		require.Len(t, secondMoves, len(firstMoves))
		for i := range firstMoves {
			require.Equal(t, firstMoves[i].Action, secondMoves[i].Action, "move %d", i)
		}
	})
}

func TestPreset(t *testing.T) {
	t.Run("every preset is a valid run", func(t *testing.T) {
		for _, name := range PresetNames() {
			cfg, err := Preset(name, config.Default())
			require.NoError(t, err, name)
			require.Equal(t, name, cfg.Name)
			require.NotEmpty(t, cfg.Agents, name)
			require.NoError(t, cfg.Validate(), name)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := Preset("cutoff", config.Default())
		require.ErrorIs(t, err, ErrUnknownExperiment)
	})
}
