package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// The ghost can only move west, towards Pacman, or east, away from him.
const corridor = `
%%%%%%%
%Po G %
%%%%%%%
`

const openField = `
%%%%%
%P  %
%   %
%  G%
%%%%%
`

func newState(t *testing.T, text string) *game.GameState {
	t.Helper()
	l, err := game.ParseLayout("test", text)
	require.NoError(t, err, "Layout should parse")
	return game.NewGameState(l)
}

func TestNew(t *testing.T) {
	t.Run("building a search agent", func(t *testing.T) {
		a, err := New(metrics.AgentConfig{ID: 1, Strategy: "alphabeta", Evaluator: "better", Depth: 1}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		s := newState(t, openField)
		action, metric := a.GetAction(s)

		require.Contains(t, s.LegalActions(game.Pacman), action, "Agent should play a legal action")
		require.Equal(t, "alphabeta", metric.Strategy)
		require.Equal(t, 1, metric.Depth)
		require.Positive(t, metric.Nodes, "Metrics should be collected")
	})

	t.Run("reflex agent without an evaluator avoids ghosts", func(t *testing.T) {
		s := newState(t, "%%%%%%\n%.P.G%\n%%%%%%\n")

		for seed := uint64(0); seed < 50; seed++ {
			a, err := New(metrics.AgentConfig{Strategy: "reflex"}, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			action, metric := a.GetAction(s)

			require.Equal(t, game.West, action, "East ends next to the ghost, seed %d", seed)
			require.InDelta(t, game.FoodScore-game.TimePenalty+0.5, metric.Value, 1e-9)
		}
	})

	t.Run("empty evaluator defaults to score", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{Strategy: "minimax", Depth: 2}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
	})

	t.Run("rejecting bad configs", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))

		_, err := New(metrics.AgentConfig{Strategy: "mcts", Evaluator: "score"}, r)
		require.ErrorIs(t, err, searcher.ErrUnknownStrategy)

		_, err = New(metrics.AgentConfig{Strategy: "minimax", Evaluator: "magic"}, r)
		require.ErrorIs(t, err, game.ErrUnknownEvaluator)

		_, err = New(metrics.AgentConfig{Strategy: "expectimax", Evaluator: "reflex"}, r)
		require.ErrorIs(t, err, game.ErrNotImplemented)

		_, err = New(metrics.AgentConfig{Strategy: "minimax", Evaluator: "score", Depth: -1}, r)
		require.Error(t, err, "Negative depth should be rejected")
	})
}

func TestGhosts(t *testing.T) {
	t.Run("parsing kinds", func(t *testing.T) {
		kind, err := ParseGhost("Directional")
		require.NoError(t, err)
		require.Equal(t, DirectionalGhostKind, kind)

		kind, err = ParseGhost(kind.String())
		require.NoError(t, err)
		require.Equal(t, DirectionalGhostKind, kind)

		_, err = ParseGhost("clyde")
		require.ErrorIs(t, err, ErrUnknownGhost)

		_, err = NewGhost(RandomGhostKind, game.Pacman, rand.New(rand.NewSource(1)))
		require.Error(t, err, "Pacman's seat cannot hold a ghost")
	})

	t.Run("random ghost plays every legal action", func(t *testing.T) {
		s := newState(t, openField)
		g, err := NewGhost(RandomGhostKind, 1, rand.New(rand.NewSource(5)))
		require.NoError(t, err)

		counts := make(map[game.Action]int)
		for i := 0; i < 1000; i++ {
			action, _ := g.GetAction(s)
			counts[action]++
		}

		legal := s.LegalActions(1)
		require.Len(t, counts, len(legal), "Every legal action should be played")
		for _, action := range legal {
			require.InDelta(t, 1.0/float64(len(legal)), float64(counts[action])/1000, 0.06, "Action %s frequency", action)
		}
	})

	t.Run("directional ghost chases pacman", func(t *testing.T) {
		s := newState(t, corridor)
		g := &DirectionalGhost{index: 1, rand: rand.New(rand.NewSource(1)), prob: 1}

		for i := 0; i < 20; i++ {
			action, _ := g.GetAction(s)
			require.Equal(t, game.West, action)
		}
	})

	t.Run("scared directional ghost flees", func(t *testing.T) {
		s := newState(t, corridor).Successor(game.Pacman, game.East)
		require.Positive(t, s.(game.Board).ScaredTimers()[0], "Capsule should scare the ghost")
		g := &DirectionalGhost{index: 1, rand: rand.New(rand.NewSource(1)), prob: 1}

		for i := 0; i < 20; i++ {
			action, _ := g.GetAction(s)
			require.Equal(t, game.East, action)
		}
	})

	t.Run("directional ghost sometimes wanders", func(t *testing.T) {
		s := newState(t, corridor)
		g, err := NewGhost(DirectionalGhostKind, 1, rand.New(rand.NewSource(9)))
		require.NoError(t, err)

		west := 0
		const trials = 2000
		for i := 0; i < trials; i++ {
			if action, _ := g.GetAction(s); action == game.West {
				west++
			}
		}

		// Best move with probability 0.8, plus half of the uniform 0.2
		require.InDelta(t, 0.9, float64(west)/trials, 0.04)
	})
}
