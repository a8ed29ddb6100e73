package config

import (
	"os"
	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes an experiment run: which board, which ghosts, and the Pacman agents to compare.
type Config struct {
	Name        string                `yaml:"name"`
	Layout      string                `yaml:"layout"`
	Ghosts      string                `yaml:"ghosts"`
	Games       int                   `yaml:"games"` // Per agent
	Seed        uint64                `yaml:"seed"`
	MaxMoves    int                   `yaml:"maxMoves"`
	Parallelism int                   `yaml:"parallelism"`
	Output      string                `yaml:"output"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
}

func Default() Config {
	return Config{
		Name:        "default",
		Layout:      meta.DEFAULT_LAYOUT,
		Ghosts:      meta.DEFAULT_GHOSTS,
		Games:       1,
		MaxMoves:    meta.MAX_MOVES,
		Parallelism: meta.GO_ROUTINES,
		Output:      meta.OUTPUT_DIR,
		Agents: []metrics.AgentConfig{
			{ID: 1, Strategy: meta.DEFAULT_STRATEGY, Evaluator: meta.DEFAULT_EVALUATOR, Depth: meta.DEFAULT_DEPTH},
		},
	}
}

// agentFile mirrors AgentConfig with optional fields so that an explicit depth of 0 survives
// defaulting.
type agentFile struct {
	ID        int     `yaml:"id"`
	Strategy  *string `yaml:"strategy"`
	Evaluator *string `yaml:"evaluator"`
	Depth     *int    `yaml:"depth"`
}

type file struct {
	Name        *string     `yaml:"name"`
	Layout      *string     `yaml:"layout"`
	Ghosts      *string     `yaml:"ghosts"`
	Games       *int        `yaml:"games"`
	Seed        *uint64     `yaml:"seed"`
	MaxMoves    *int        `yaml:"maxMoves"`
	Parallelism *int        `yaml:"parallelism"`
	Output      *string     `yaml:"output"`
	Agents      []agentFile `yaml:"agents"`
}

// Load reads a YAML run file. Missing fields take their Default values, agents without an id are
// numbered from 1 in file order and agents without an evaluator get their strategy's default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}

	cfg := Default()
	setIf(&cfg.Name, f.Name)
	setIf(&cfg.Layout, f.Layout)
	setIf(&cfg.Ghosts, f.Ghosts)
	setIf(&cfg.Games, f.Games)
	setIf(&cfg.Seed, f.Seed)
	setIf(&cfg.MaxMoves, f.MaxMoves)
	setIf(&cfg.Parallelism, f.Parallelism)
	setIf(&cfg.Output, f.Output)

	if len(f.Agents) > 0 {
		cfg.Agents = make([]metrics.AgentConfig, len(f.Agents))
		for i, a := range f.Agents {
			config := metrics.AgentConfig{
				ID:        a.ID,
				Strategy:  meta.DEFAULT_STRATEGY,
				Evaluator: meta.DEFAULT_EVALUATOR,
				Depth:     meta.DEFAULT_DEPTH,
			}
			if config.ID == 0 {
				config.ID = i + 1
			}
			setIf(&config.Strategy, a.Strategy)
			if a.Evaluator == nil {
				// An unknown strategy is left for Validate to report
				if strategy, err := searcher.ParseStrategy(config.Strategy); err == nil {
					config.Evaluator = searcher.DefaultEvaluator(strategy).String()
				}
			}
			setIf(&config.Evaluator, a.Evaluator)
			setIf(&config.Depth, a.Depth)
			cfg.Agents[i] = config
		}
	}
	return cfg, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate resolves every name in the config and checks the numeric limits.
func (c Config) Validate() error {
	if _, err := game.LookupLayout(c.Layout); err != nil {
		return err
	}
	if _, err := agent.ParseGhost(c.Ghosts); err != nil {
		return err
	}
	if c.Games <= 0 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxMoves <= 0 {
		return errors.Errorf("max moves must be positive, got %d", c.MaxMoves)
	}
	if c.Parallelism <= 0 {
		return errors.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}
	if len(c.Agents) == 0 {
		return errors.New("at least one agent is required")
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return errors.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true

		strategy, err := searcher.ParseStrategy(a.Strategy)
		if err != nil {
			return errors.WithMessagef(err, "agent %d", a.ID)
		}
		evaluator := searcher.DefaultEvaluator(strategy)
		if a.Evaluator != "" {
			evaluator, err = game.ParseEvaluator(a.Evaluator)
			if err != nil {
				return errors.WithMessagef(err, "agent %d", a.ID)
			}
		}
		if strategy != searcher.ReflexStrategy {
			if _, err := evaluator.Leaf(); err != nil {
				return errors.WithMessagef(err, "agent %d uses %s", a.ID, strategy)
			}
		}
		if a.Depth < 0 {
			return errors.Errorf("agent %d: depth must not be negative, got %d", a.ID, a.Depth)
		}
	}
	return nil
}
