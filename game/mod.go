package game

// Pacman is the agent index of the maximizing agent, ghosts use 1..NumAgents()-1.
const Pacman = 0

// State should be immutable - operations on State always return a new copy
type State interface {
	// LegalActions returns the ordered actions available to agent, possibly none
	LegalActions(agent int) []Action
	// Successor returns the state after agent plays action. It panics if action is not legal.
	Successor(agent int, action Action) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Board exposes the grid observations the heuristic evaluators need.
type Board interface {
	State
	PacmanPosition() Position
	GhostPositions() []Position
	ScaredTimers() []int
	Food() []Position
	Capsules() []Position
	IsWall(p Position) bool
}

// Evaluates a state to a utility from Pacman's perspective, higher is better.
type Evaluate func(State) float64

// Evaluates playing action from state (one ply) to a utility, higher is better.
type ActionEvaluate func(State, Action) float64

// IsTerminal reports whether the game is over in state.
func IsTerminal(state State) bool {
	return state.IsWin() || state.IsLose()
}
