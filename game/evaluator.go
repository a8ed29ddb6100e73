package game

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownEvaluator = errors.New("unknown evaluator")
	ErrNotImplemented   = errors.New("not implemented")
)

// Evaluator selects one of the evaluation functions.
type Evaluator int

const (
	ScoreEvaluator Evaluator = iota
	ReflexEvaluator
	BetterEvaluator
)

var evaluatorNames = map[string]Evaluator{
	"score":                    ScoreEvaluator,
	"scoreevaluationfunction":  ScoreEvaluator,
	"reflex":                   ReflexEvaluator,
	"reflexevaluation":         ReflexEvaluator,
	"better":                   BetterEvaluator,
	"betterevaluationfunction": BetterEvaluator,
}

// ParseEvaluator resolves an evaluator by name, case-insensitively. An empty name selects the score
// evaluator.
func ParseEvaluator(name string) (Evaluator, error) {
	if name == "" {
		return ScoreEvaluator, nil
	}
	e, ok := evaluatorNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownEvaluator, "%q", name)
	}
	return e, nil
}

func (e Evaluator) String() string {
	switch e {
	case ScoreEvaluator:
		return "score"
	case ReflexEvaluator:
		return "reflex"
	case BetterEvaluator:
		return "better"
	}
	return "unknown"
}

// Leaf returns the state-only form used at search cutoffs.
func (e Evaluator) Leaf() (Evaluate, error) {
	switch e {
	case ScoreEvaluator:
		return ScoreEvaluation, nil
	case BetterEvaluator:
		return BetterEvaluation, nil
	case ReflexEvaluator:
		return nil, errors.Wrap(ErrNotImplemented, "reflex evaluator has no state-only form")
	}
	return nil, errors.Wrapf(ErrUnknownEvaluator, "%d", int(e))
}

// ForAction returns the one-ply form used by the reflex selector. State-only evaluators score the
// successor.
func (e Evaluator) ForAction() (ActionEvaluate, error) {
	if e == ReflexEvaluator {
		return ReflexEvaluation, nil
	}
	leaf, err := e.Leaf()
	if err != nil {
		return nil, err
	}
	return func(s State, action Action) float64 {
		return leaf(s.Successor(Pacman, action))
	}, nil
}
