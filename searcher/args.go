package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(o *options)

type options struct {
	depth          int
	evaluate       game.Evaluate
	evaluateAction game.ActionEvaluate
	rand           *rand.Rand
	metrics        metrics.Collector
}

func defaultOptions() options {
	return options{
		depth:          meta.DEFAULT_DEPTH,
		evaluate:       game.ScoreEvaluation,
		evaluateAction: game.ReflexEvaluation,
		rand:           rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:        metrics.NewDummyCollector(),
	}
}

// WithDepth sets the number of full rounds searched. Depth 0 scores Pacman's successors directly.
func WithDepth(depth int) Option {
	return func(o *options) {
		if depth >= 0 {
			o.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

func WithActionEvaluationFn(evaluate game.ActionEvaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluateAction = evaluate
		}
	}
}

// WithRand sets the source of the reflex tie-break, seed it for reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}
