package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReflexEvaluation(t *testing.T) {
	t.Run("adding the reciprocal food distance to the score", func(t *testing.T) {
		s := newTestState(t, testLayout)

		// Pacman ends on (1,2): closest food (2,1) is 2 away, the ghost is 2 away
		got := ReflexEvaluation(s, South)

		require.InDelta(t, -TimePenalty+0.5, got, 1e-9)
	})

	t.Run("vetoing moves next to a scared ghost", func(t *testing.T) {
		s := newTestState(t, testLayout)
		beforeCapsule := s.Successor(Pacman, East)

		got := ReflexEvaluation(beforeCapsule, East)

		successor := beforeCapsule.Successor(Pacman, East).(*GameState)
		require.Equal(t, []int{ScaredTime}, successor.ScaredTimers(), "Ghost should be scared after the move")
		require.Equal(t, math.Inf(-1), got, "Veto should ignore scared timers")
	})

	t.Run("board without food", func(t *testing.T) {
		s := newTestState(t, "%%%%%\n%P  %\n%  G%\n%%%%%\n")

		var got float64
		require.NotPanics(t, func() {
			got = ReflexEvaluation(s, Stop)
		})
		require.Equal(t, -TimePenalty, got, "Food term should be absent")
	})

	t.Run("receiver is not mutated", func(t *testing.T) {
		s := newTestState(t, testLayout)
		ReflexEvaluation(s, East)
		require.Equal(t, 2, s.FoodCount())
		require.Equal(t, 0.0, s.Score())
	})
}

func TestBetterEvaluation(t *testing.T) {
	t.Run("losing states are worse than any other state", func(t *testing.T) {
		s := newTestState(t, testLayout)
		lost := play(t, play(t, s, Pacman, East), 1, West, North)
		alive := play(t, s, Pacman, East)

		require.Equal(t, math.Inf(-1), BetterEvaluation(lost))
		require.Less(t, BetterEvaluation(lost), BetterEvaluation(alive))
	})

	t.Run("winning states are valued by score", func(t *testing.T) {
		s := newTestState(t, testLayout)
		won := play(t, s, Pacman, East, East, East, South)
		require.Equal(t, won.Score(), BetterEvaluation(won))
	})

	t.Run("non-terminal states are finite", func(t *testing.T) {
		for _, name := range LayoutNames() {
			l, err := LookupLayout(name)
			require.NoError(t, err)
			s := NewGameState(l)
			for _, action := range s.LegalActions(Pacman) {
				next := s.Successor(Pacman, action)
				if IsTerminal(next) {
					continue
				}
				v := BetterEvaluation(next)
				require.False(t, math.IsInf(v, 0) || math.IsNaN(v), "Evaluation of %s after %s should be finite", name, action)
			}
		}
	})

	t.Run("symmetric scared ghost placements score equally", func(t *testing.T) {
		s := newTestState(t, testLayout)
		scared := play(t, s, Pacman, East, East)
		east := scared.Successor(1, East) // Ghost moves to (4,2), 2 away
		west := scared.Successor(1, West) // Ghost moves to (2,2), 2 away as well
		require.InDelta(t, BetterEvaluation(east), BetterEvaluation(west), 1e-9, "Equal distances should score equally")
	})
}

func TestParseEvaluator(t *testing.T) {
	t.Run("resolving known names", func(t *testing.T) {
		for name, want := range map[string]Evaluator{
			"":                         ScoreEvaluator,
			"score":                    ScoreEvaluator,
			"scoreEvaluationFunction":  ScoreEvaluator,
			"reflex":                   ReflexEvaluator,
			"better":                   BetterEvaluator,
			"betterEvaluationFunction": BetterEvaluator,
		} {
			got, err := ParseEvaluator(name)
			require.NoError(t, err, "Should resolve %q", name)
			require.Equal(t, want, got, "Should resolve %q", name)
		}
	})

	t.Run("failing fast on unknown names", func(t *testing.T) {
		_, err := ParseEvaluator("bestEvaluationFunction")
		require.ErrorIs(t, err, ErrUnknownEvaluator)
	})
}

func TestEvaluatorForms(t *testing.T) {
	t.Run("reflex has no state-only form", func(t *testing.T) {
		_, err := ReflexEvaluator.Leaf()
		require.ErrorIs(t, err, ErrNotImplemented)
	})

	t.Run("leaf evaluators score the successor for actions", func(t *testing.T) {
		s := newTestState(t, testLayout)
		evaluate, err := ScoreEvaluator.ForAction()
		require.NoError(t, err)
		require.Equal(t, FoodScore-TimePenalty, evaluate(s, East))
	})

	t.Run("unknown selector", func(t *testing.T) {
		_, err := Evaluator(42).Leaf()
		require.ErrorIs(t, err, ErrUnknownEvaluator)
	})
}
