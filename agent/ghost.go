package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var ErrUnknownGhost = errors.New("unknown ghost")

// GhostKind selects the policy of the ghost agents.
type GhostKind int

const (
	RandomGhostKind GhostKind = iota
	DirectionalGhostKind
)

// Probability that a directional ghost takes one of its best moves instead of a random one
const directionalProb = 0.8

func ParseGhost(name string) (GhostKind, error) {
	switch strings.ToLower(name) {
	case "random", "randomghost":
		return RandomGhostKind, nil
	case "directional", "directionalghost":
		return DirectionalGhostKind, nil
	}
	return 0, errors.Wrapf(ErrUnknownGhost, "%q", name)
}

func (k GhostKind) String() string {
	switch k {
	case RandomGhostKind:
		return "random"
	case DirectionalGhostKind:
		return "directional"
	}
	return "unknown"
}

// NewGhost returns the ghost agent of the given kind playing agent index.
func NewGhost(kind GhostKind, index int, r *rand.Rand) (Agent, error) {
	if index <= game.Pacman {
		return nil, errors.Errorf("ghost index must be positive, got %d", index)
	}
	switch kind {
	case RandomGhostKind:
		return &RandomGhost{index: index, rand: r}, nil
	case DirectionalGhostKind:
		return &DirectionalGhost{index: index, rand: r, prob: directionalProb}, nil
	}
	return nil, errors.Wrapf(ErrUnknownGhost, "%d", int(kind))
}

// RandomGhost moves uniformly among its legal actions.
type RandomGhost struct {
	index int
	rand  *rand.Rand
}

func (g *RandomGhost) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	return actions[g.rand.Intn(len(actions))], metrics.SearchMetric{}
}

// DirectionalGhost closes in on Pacman, or flees while scared, and otherwise moves at random.
type DirectionalGhost struct {
	index int
	rand  *rand.Rand
	prob  float64
}

func (g *DirectionalGhost) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	board, ok := state.(game.Board)
	if !ok {
		panic("unexpected state type")
	}

	if g.rand.Float64() >= g.prob {
		return actions[g.rand.Intn(len(actions))], metrics.SearchMetric{}
	}
	best := g.bestActions(board, actions)
	return best[g.rand.Intn(len(best))], metrics.SearchMetric{}
}

// bestActions returns the actions minimizing the distance to Pacman, or maximizing it when scared.
func (g *DirectionalGhost) bestActions(board game.Board, actions []game.Action) []game.Action {
	position := board.GhostPositions()[g.index-1]
	scared := board.ScaredTimers()[g.index-1] > 0
	pacman := board.PacmanPosition()

	best := []game.Action{}
	bestDist := 0
	for _, action := range actions {
		dist := game.Manhattan(position.Move(action), pacman)
		if scared {
			dist = -dist
		}
		switch {
		case len(best) == 0 || dist < bestDist:
			best, bestDist = []game.Action{action}, dist
		case dist == bestDist:
			best = append(best, action)
		}
	}
	return best
}
