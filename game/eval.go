package game

import "math"

// Weights of the composite evaluation
const (
	foodProximityWeight = 10.0  // Reward for being near the closest food
	foodCountWeight     = 4.0   // Penalty per remaining food
	capsuleWeight       = 20.0  // Penalty per remaining capsule
	huntWeight          = 100.0 // Reward for closing in on a reachable scared ghost
	dangerWeight        = 150.0 // Penalty for standing next to an active ghost
	dangerRadius        = 2     // Active ghosts farther away than this are ignored
)

// ScoreEvaluation returns the game score unchanged. It is the default leaf evaluation for search.
func ScoreEvaluation(s State) float64 {
	return s.Score()
}

// ReflexEvaluation scores playing action from s by the successor's score plus the reciprocal
// distance to the closest food. Any move ending next to a ghost is vetoed with -Inf, scared or not.
func ReflexEvaluation(s State, action Action) float64 {
	successor, ok := s.Successor(Pacman, action).(Board)
	if !ok {
		panic("unexpected state type")
	}
	pacman := successor.PacmanPosition()

	for _, ghost := range successor.GhostPositions() {
		if Manhattan(pacman, ghost) < 2 {
			return math.Inf(-1)
		}
	}

	score := successor.Score()
	if food, ok := closestFood(pacman, successor.Food()); ok && food > 0 {
		score += 1.0 / float64(food)
	}
	return score
}

// BetterEvaluation combines the score with food proximity, hunting scared ghosts, avoiding active
// ghosts and clearing capsules. Losing states are -Inf, every other state is finite.
func BetterEvaluation(s State) float64 {
	if s.IsLose() {
		return math.Inf(-1)
	}
	if s.IsWin() {
		return s.Score()
	}
	gs, ok := s.(Board)
	if !ok {
		panic("unexpected state type")
	}

	pacman := gs.PacmanPosition()
	food := gs.Food()
	value := gs.Score()

	if dist, ok := closestFood(pacman, food); ok {
		value += foodProximityWeight / float64(dist+1)
	}
	value -= foodCountWeight * float64(len(food))
	value -= capsuleWeight * float64(len(gs.Capsules()))

	timers := gs.ScaredTimers()
	for i, ghost := range gs.GhostPositions() {
		dist := Manhattan(pacman, ghost)
		switch {
		case timers[i] > dist:
			// Reachable before it recovers
			value += huntWeight / float64(dist+1)
		case timers[i] == 0 && dist <= dangerRadius:
			value -= dangerWeight / float64(dist+1)
		}
	}

	return value
}

// closestFood returns the Manhattan distance from p to the closest food, false if there is none.
func closestFood(p Position, food []Position) (int, bool) {
	if len(food) == 0 {
		return 0, false
	}
	closest := math.MaxInt
	for _, f := range food {
		closest = min(closest, Manhattan(p, f))
	}
	return closest, true
}
