package game

// Action is one of the four cardinal moves or Stop.
type Action int

const (
	Stop Action = iota
	North
	South
	East
	West
)

// Directions lists the moving actions in the order legal actions are generated.
var Directions = []Action{North, South, East, West}

func (a Action) String() string {
	switch a {
	case Stop:
		return "Stop"
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}

// Reverse returns the opposite direction, Stop reverses to itself.
func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return Stop
}

// Position is a grid cell, rows grow downwards.
type Position struct {
	X int
	Y int
}

// Move returns the neighbouring position in direction a.
func (p Position) Move(a Action) Position {
	switch a {
	case North:
		return Position{X: p.X, Y: p.Y - 1}
	case South:
		return Position{X: p.X, Y: p.Y + 1}
	case East:
		return Position{X: p.X + 1, Y: p.Y}
	case West:
		return Position{X: p.X - 1, Y: p.Y}
	}
	return p
}

// Manhattan returns the sum of absolute coordinate differences between a and b.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
