package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/rs/zerolog/log"
)

// Searcher picks Pacman's next move from the current state.
type Searcher interface {
	FindNextMove(state game.State) (game.Action, metrics.SearchMetric)
}

type search struct {
	options
	strategy Strategy
}

func newSearch(strategy Strategy, opts []Option) search {
	s := search{options: defaultOptions(), strategy: strategy}
	for _, option := range opts {
		option(&s.options)
	}
	return s
}

// leaf scores a cutoff node with the evaluation function.
func (s *search) leaf(state game.State) float64 {
	s.metrics.AddLeaf()
	return s.evaluate(state)
}

func (s *search) finish(action game.Action, value float64) (game.Action, metrics.SearchMetric) {
	metric := s.metrics.Complete()
	metric.Strategy = s.strategy.String()
	metric.Depth = s.depth
	metric.Value = value

	log.Debug().Msgf("%s chose %s with value %.2f (%d nodes, %d prunes)", s.strategy, action, value, metric.Nodes, metric.Prunes)
	return action, metric
}

// root handles the degenerate roots every tree search shares: a terminal state or one where Pacman
// cannot move is scored directly.
func (s *search) root(state game.State) ([]game.Action, bool) {
	s.metrics.Start()
	s.metrics.AddNode()
	if game.IsTerminal(state) {
		return nil, false
	}
	actions := state.LegalActions(game.Pacman)
	return actions, len(actions) > 0
}

// nextTurn returns the agent moving after agent and the remaining depth at its node. A round is
// consumed when play comes back to Pacman.
func nextTurn(state game.State, agent, depth int) (int, int) {
	next := (agent + 1) % state.NumAgents()
	if next == game.Pacman {
		return next, depth - 1
	}
	return next, depth
}

// cutoff reports whether a node is scored instead of expanded. Terminal states are absorbing at
// any depth.
func cutoff(state game.State, depth int) bool {
	return depth <= 0 || game.IsTerminal(state)
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
