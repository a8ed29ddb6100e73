package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Agent controls one seat of the game, Pacman or a ghost.
type Agent interface {
	// GetAction returns the move for this agent's turn and the metrics of the decision, if collected
	GetAction(state game.State) (game.Action, metrics.SearchMetric)
}

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns a Pacman agent that plays whatever the searcher picks.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	return a.searcher.FindNextMove(state)
}

// New builds a metrics-collecting Pacman agent from its config. Names are resolved the way the
// command line resolves them and an empty evaluator picks the strategy's default. r drives the
// reflex tie-break.
func New(config metrics.AgentConfig, r *rand.Rand) (Agent, error) {
	strategy, err := searcher.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, errors.WithMessagef(err, "agent %d", config.ID)
	}
	evaluator := searcher.DefaultEvaluator(strategy)
	if config.Evaluator != "" {
		evaluator, err = game.ParseEvaluator(config.Evaluator)
		if err != nil {
			return nil, errors.WithMessagef(err, "agent %d", config.ID)
		}
	}
	if config.Depth < 0 {
		return nil, errors.Errorf("agent %d: depth must not be negative, got %d", config.ID, config.Depth)
	}

	s, err := searcher.New(strategy, evaluator,
		searcher.WithDepth(config.Depth),
		searcher.WithRand(r),
		searcher.WithMetrics(),
	)
	if err != nil {
		return nil, errors.WithMessagef(err, "agent %d", config.ID)
	}
	return NewSearchAgent(s), nil
}
