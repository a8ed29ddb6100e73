package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

// Minimax searches against ghosts that always pick the move worst for Pacman.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{search: newSearch(MinimaxStrategy, options)}
}

// FindNextMove returns the first action achieving the minimax value at the root.
func (m *Minimax) FindNextMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions, ok := m.root(state)
	if !ok {
		return m.finish(game.Stop, m.leaf(state))
	}

	agent, depth := nextTurn(state, game.Pacman, m.depth)
	best, bestValue := actions[0], negInf
	for _, action := range actions {
		value := m.value(state.Successor(game.Pacman, action), agent, depth)
		if value > bestValue {
			best, bestValue = action, value
		}
	}
	return m.finish(best, bestValue)
}

func (m *Minimax) value(state game.State, agent, depth int) float64 {
	m.metrics.AddNode()
	if cutoff(state, depth) {
		return m.leaf(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return m.leaf(state)
	}

	nextAgent, nextDepth := nextTurn(state, agent, depth)
	if agent == game.Pacman {
		best := negInf
		for _, action := range actions {
			best = max(best, m.value(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return best
	}

	best := posInf
	for _, action := range actions {
		best = min(best, m.value(state.Successor(agent, action), nextAgent, nextDepth))
	}
	return best
}
