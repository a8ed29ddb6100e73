package experiments

import (
	"pacman/config"
	"pacman/experiments/metrics"
	"pacman/meta"
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

var presets = map[string]func() []metrics.AgentConfig{
	// Every strategy at the default depth
	"strategies": func() []metrics.AgentConfig {
		return []metrics.AgentConfig{
			{ID: 1, Strategy: "reflex", Evaluator: "reflex"},
			{ID: 2, Strategy: "minimax", Evaluator: meta.DEFAULT_EVALUATOR, Depth: meta.DEFAULT_DEPTH},
			{ID: 3, Strategy: "alphabeta", Evaluator: meta.DEFAULT_EVALUATOR, Depth: meta.DEFAULT_DEPTH},
			{ID: 4, Strategy: "expectimax", Evaluator: meta.DEFAULT_EVALUATOR, Depth: meta.DEFAULT_DEPTH},
		}
	},
	// Alpha-beta node counts as the horizon grows
	"depth": func() []metrics.AgentConfig {
		configs := []metrics.AgentConfig{}
		for depth := 1; depth <= 4; depth++ {
			configs = append(configs, metrics.AgentConfig{ID: depth, Strategy: "alphabeta", Evaluator: "better", Depth: depth})
		}
		return configs
	},
	"evaluators": func() []metrics.AgentConfig {
		return []metrics.AgentConfig{
			{ID: 1, Strategy: "alphabeta", Evaluator: "score", Depth: meta.DEFAULT_DEPTH},
			{ID: 2, Strategy: "alphabeta", Evaluator: "better", Depth: meta.DEFAULT_DEPTH},
		}
	},
}

// Preset returns cfg with its name and agents replaced by those of the named experiment.
func Preset(name string, cfg config.Config) (config.Config, error) {
	agents, ok := presets[name]
	if !ok {
		return cfg, errors.Wrapf(ErrUnknownExperiment, "%q", name)
	}
	cfg.Name = name
	cfg.Agents = agents()
	return cfg, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
