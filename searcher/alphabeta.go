package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

// AlphaBeta is Minimax that skips subtrees which cannot change the root value.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{search: newSearch(AlphaBetaStrategy, options)}
}

// FindNextMove returns the same action and value as Minimax. The root is a max node whose alpha
// tightens across its children.
func (s *AlphaBeta) FindNextMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions, ok := s.root(state)
	if !ok {
		return s.finish(game.Stop, s.leaf(state))
	}

	agent, depth := nextTurn(state, game.Pacman, s.depth)
	best, bestValue := actions[0], negInf
	alpha := negInf
	for _, action := range actions {
		value := s.value(state.Successor(game.Pacman, action), agent, depth, alpha, posInf)
		if value > bestValue {
			best, bestValue = action, value
		}
		alpha = max(alpha, bestValue)
	}
	return s.finish(best, bestValue)
}

// value is fail-soft: a pruned node returns its running best, which is only a bound on its true
// value but never one the parent would choose.
func (s *AlphaBeta) value(state game.State, agent, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if cutoff(state, depth) {
		return s.leaf(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return s.leaf(state)
	}

	nextAgent, nextDepth := nextTurn(state, agent, depth)
	if agent == game.Pacman {
		best := negInf
		for _, action := range actions {
			best = max(best, s.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
			if best >= beta {
				s.metrics.AddPrune()
				return best
			}
			alpha = max(alpha, best)
		}
		return best
	}

	best := posInf
	for _, action := range actions {
		best = min(best, s.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
		if best <= alpha {
			s.metrics.AddPrune()
			return best
		}
		beta = min(beta, best)
	}
	return best
}
