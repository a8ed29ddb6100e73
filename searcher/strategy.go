package searcher

import (
	"pacman/game"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy selects how Pacman decides and how ghosts are modelled.
type Strategy int

const (
	ReflexStrategy     Strategy = iota // One ply, no ghost model
	MinimaxStrategy                    // Worst-case ghosts
	AlphaBetaStrategy                  // Worst-case ghosts, pruned
	ExpectimaxStrategy                 // Uniformly random ghosts
)

var strategyNames = map[string]Strategy{
	"reflex":          ReflexStrategy,
	"reflexagent":     ReflexStrategy,
	"minimax":         MinimaxStrategy,
	"minimaxagent":    MinimaxStrategy,
	"alphabeta":       AlphaBetaStrategy,
	"alphabetaagent":  AlphaBetaStrategy,
	"expectimax":      ExpectimaxStrategy,
	"expectimaxagent": ExpectimaxStrategy,
}

// ParseStrategy resolves a strategy by name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := strategyNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
	return s, nil
}

func (s Strategy) String() string {
	switch s {
	case ReflexStrategy:
		return "reflex"
	case MinimaxStrategy:
		return "minimax"
	case AlphaBetaStrategy:
		return "alphabeta"
	case ExpectimaxStrategy:
		return "expectimax"
	}
	return "unknown"
}

// DefaultEvaluator is the evaluator a strategy uses when none is named: the reflex selector scores
// moves with the reflex evaluator, tree searches score leaves with the game score.
func DefaultEvaluator(strategy Strategy) game.Evaluator {
	if strategy == ReflexStrategy {
		return game.ReflexEvaluator
	}
	return game.ScoreEvaluator
}

// New builds the searcher for strategy, using evaluator at its cutoffs (or for every move when
// the strategy is reflex).
func New(strategy Strategy, evaluator game.Evaluator, options ...Option) (Searcher, error) {
	opts := append([]Option{}, options...)

	if strategy == ReflexStrategy {
		evaluate, err := evaluator.ForAction()
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create %s searcher", strategy)
		}
		return NewReflex(append(opts, WithActionEvaluationFn(evaluate))...), nil
	}

	evaluate, err := evaluator.Leaf()
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create %s searcher", strategy)
	}
	opts = append(opts, WithEvaluationFn(evaluate))

	switch strategy {
	case MinimaxStrategy:
		return NewMinimax(opts...), nil
	case AlphaBetaStrategy:
		return NewAlphaBeta(opts...), nil
	case ExpectimaxStrategy:
		return NewExpectimax(opts...), nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "%d", int(strategy))
}
