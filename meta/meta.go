// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of full rounds searched per move.
const DEFAULT_DEPTH = 2

// DEFAULT_STRATEGY defines the Pacman search strategy.
const DEFAULT_STRATEGY = "alphabeta"

// DEFAULT_EVALUATOR defines the leaf evaluation function.
const DEFAULT_EVALUATOR = "score"

// DEFAULT_GHOSTS defines the ghost agent kind.
const DEFAULT_GHOSTS = "random"

// DEFAULT_LAYOUT defines the board played.
const DEFAULT_LAYOUT = "smallClassic"

// MAX_MOVES defines the number of agent moves after which a game is abandoned.
const MAX_MOVES = 1000

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 4

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments"
