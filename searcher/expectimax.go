package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

// Expectimax searches against ghosts that pick uniformly among their legal moves.
type Expectimax struct {
	search
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{search: newSearch(ExpectimaxStrategy, options)}
}

// FindNextMove returns the first action achieving the highest expected value at the root.
func (e *Expectimax) FindNextMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions, ok := e.root(state)
	if !ok {
		return e.finish(game.Stop, e.leaf(state))
	}

	agent, depth := nextTurn(state, game.Pacman, e.depth)
	best, bestValue := actions[0], negInf
	for _, action := range actions {
		value := e.value(state.Successor(game.Pacman, action), agent, depth)
		if value > bestValue {
			best, bestValue = action, value
		}
	}
	return e.finish(best, bestValue)
}

func (e *Expectimax) value(state game.State, agent, depth int) float64 {
	e.metrics.AddNode()
	if cutoff(state, depth) {
		return e.leaf(state)
	}

	nextAgent, nextDepth := nextTurn(state, agent, depth)
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		if agent == game.Pacman {
			return e.leaf(state)
		}
		// A ghost that cannot move passes its turn
		return e.value(state, nextAgent, nextDepth)
	}

	if agent == game.Pacman {
		best := negInf
		for _, action := range actions {
			best = max(best, e.value(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return best
	}

	total := 0.0
	for _, action := range actions {
		total += e.value(state.Successor(agent, action), nextAgent, nextDepth)
	}
	return total / float64(len(actions))
}
