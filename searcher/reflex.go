package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/utils"
	"slices"
)

// Reflex scores each of Pacman's moves one ply ahead and picks uniformly among the best.
type Reflex struct {
	search
}

// NewReflex ignores the depth option, the reflex selector only looks one ply ahead.
func NewReflex(options ...Option) *Reflex {
	r := &Reflex{search: newSearch(ReflexStrategy, options)}
	r.depth = 0
	return r
}

func (r *Reflex) FindNextMove(state game.State) (game.Action, metrics.SearchMetric) {
	r.metrics.Start()
	actions := state.LegalActions(game.Pacman)
	if len(actions) == 0 {
		return r.finish(game.Stop, negInf)
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		r.metrics.AddNode()
		r.metrics.AddLeaf()
		scores[i] = r.evaluateAction(state, action)
		if math.IsNaN(scores[i]) {
			scores[i] = negInf
		}
	}

	best := slices.Max(scores)
	ties := utils.FindIndices(scores, best)
	chosen := ties[r.rand.Intn(len(ties))]
	return r.finish(actions[chosen], best)
}
