package game

import (
	"fmt"
	"pacman/utils"
	"strings"
)

type agentState struct {
	Position    Position
	Start       Position
	Direction   Action // Last move, ghosts may not reverse it
	ScaredTimer int
}

// GameState represents the dynamic state of the game at any point, everything except the layout
// which is static.
type GameState struct {
	layout   *Layout
	agents   []agentState // Pacman first, then ghosts in layout order
	food     []bool       // Indexed like the layout walls
	foodLeft int
	capsules []Position
	score    float64
	win      bool
	lose     bool
}

// NewGameState places Pacman, every ghost, food and capsules at their layout starts.
func NewGameState(l *Layout) *GameState {
	gs := &GameState{
		layout:   l,
		agents:   make([]agentState, 0, 1+len(l.GhostStarts)),
		food:     make([]bool, l.Width*l.Height),
		foodLeft: len(l.Food),
		capsules: append([]Position(nil), l.Capsules...),
	}
	gs.agents = append(gs.agents, agentState{Position: l.PacmanStart, Start: l.PacmanStart})
	for _, start := range l.GhostStarts {
		gs.agents = append(gs.agents, agentState{Position: start, Start: start})
	}
	for _, p := range l.Food {
		gs.food[l.index(p)] = true
	}
	return gs
}

// Copy returns a deep copy sharing only the layout.
func (gs *GameState) Copy() *GameState {
	agentsCopy := make([]agentState, len(gs.agents))
	copy(agentsCopy, gs.agents)

	foodCopy := make([]bool, len(gs.food))
	copy(foodCopy, gs.food)

	capsulesCopy := make([]Position, len(gs.capsules))
	copy(capsulesCopy, gs.capsules)

	return &GameState{
		layout:   gs.layout, // Layout is immutable
		agents:   agentsCopy,
		food:     foodCopy,
		foodLeft: gs.foodLeft,
		capsules: capsulesCopy,
		score:    gs.score,
		win:      gs.win,
		lose:     gs.lose,
	}
}

func (gs *GameState) NumAgents() int {
	return len(gs.agents)
}

func (gs *GameState) IsWin() bool {
	return gs.win
}

func (gs *GameState) IsLose() bool {
	return gs.lose
}

func (gs *GameState) Score() float64 {
	return gs.score
}

func (gs *GameState) Layout() *Layout {
	return gs.layout
}

// LegalActions returns the moves agent may take. Pacman may stop, ghosts may not, and ghosts only
// turn back when there is nowhere else to go. Terminal states have no legal actions.
func (gs *GameState) LegalActions(agent int) []Action {
	if gs.win || gs.lose || agent < 0 || agent >= len(gs.agents) {
		return nil
	}

	a := gs.agents[agent]
	actions := make([]Action, 0, len(Directions)+1)
	for _, dir := range Directions {
		if !gs.layout.IsWall(a.Position.Move(dir)) {
			actions = append(actions, dir)
		}
	}

	if agent == Pacman {
		return append(actions, Stop)
	}

	if reverse := a.Direction.Reverse(); reverse != Stop && len(actions) > 1 {
		if i := utils.FindIndex(actions, reverse); i >= 0 {
			actions = append(actions[:i], actions[i+1:]...)
		}
	}
	return actions
}

func (gs *GameState) Successor(agent int, action Action) State {
	if gs.win || gs.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if utils.FindIndex(gs.LegalActions(agent), action) < 0 {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := gs.Copy()
	if agent == Pacman {
		next.movePacman(action)
	} else {
		next.moveGhost(agent, action)
	}
	return next
}

func (gs *GameState) movePacman(action Action) {
	pacman := &gs.agents[Pacman]
	pacman.Position = pacman.Position.Move(action)
	pacman.Direction = action
	gs.score -= TimePenalty

	// Eat food
	if i := gs.layout.index(pacman.Position); gs.food[i] {
		gs.food[i] = false
		gs.foodLeft--
		gs.score += FoodScore
		if gs.foodLeft == 0 {
			gs.score += WinScore
			gs.win = true
		}
	}

	// Eat capsule
	if i := utils.FindIndex(gs.capsules, pacman.Position); i >= 0 {
		gs.capsules = append(gs.capsules[:i], gs.capsules[i+1:]...)
		for ghost := 1; ghost < len(gs.agents); ghost++ {
			gs.agents[ghost].ScaredTimer = ScaredTime
		}
	}

	for ghost := 1; ghost < len(gs.agents); ghost++ {
		gs.checkCollision(ghost)
	}
}

func (gs *GameState) moveGhost(agent int, action Action) {
	ghost := &gs.agents[agent]
	ghost.Position = ghost.Position.Move(action)
	ghost.Direction = action
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
	gs.checkCollision(agent)
}

func (gs *GameState) checkCollision(agent int) {
	ghost := &gs.agents[agent]
	if ghost.Position != gs.agents[Pacman].Position {
		return
	}
	if ghost.ScaredTimer > 0 {
		gs.score += GhostScore
		ghost.Position = ghost.Start
		ghost.Direction = Stop
		ghost.ScaredTimer = 0
		return
	}
	if !gs.win {
		gs.score -= LoseScore
		gs.lose = true
	}
}

func (gs *GameState) PacmanPosition() Position {
	return gs.agents[Pacman].Position
}

func (gs *GameState) GhostPositions() []Position {
	positions := make([]Position, 0, len(gs.agents)-1)
	for _, a := range gs.agents[1:] {
		positions = append(positions, a.Position)
	}
	return positions
}

func (gs *GameState) ScaredTimers() []int {
	timers := make([]int, 0, len(gs.agents)-1)
	for _, a := range gs.agents[1:] {
		timers = append(timers, a.ScaredTimer)
	}
	return timers
}

// Food returns the remaining food in row-major order.
func (gs *GameState) Food() []Position {
	food := make([]Position, 0, gs.foodLeft)
	for i, ok := range gs.food {
		if ok {
			food = append(food, Position{X: i % gs.layout.Width, Y: i / gs.layout.Width})
		}
	}
	return food
}

func (gs *GameState) FoodCount() int {
	return gs.foodLeft
}

func (gs *GameState) HasFood(p Position) bool {
	if gs.layout.IsWall(p) {
		return false
	}
	return gs.food[gs.layout.index(p)]
}

func (gs *GameState) Capsules() []Position {
	return append([]Position(nil), gs.capsules...)
}

func (gs *GameState) IsWall(p Position) bool {
	return gs.layout.IsWall(p)
}

// String renders the board in the layout character format, scared ghosts as 'S'.
func (gs *GameState) String() string {
	grid := make([][]byte, gs.layout.Height)
	for y := range grid {
		grid[y] = make([]byte, gs.layout.Width)
		for x := range grid[y] {
			p := Position{X: x, Y: y}
			switch {
			case gs.layout.IsWall(p):
				grid[y][x] = '%'
			case gs.food[gs.layout.index(p)]:
				grid[y][x] = '.'
			default:
				grid[y][x] = ' '
			}
		}
	}
	for _, c := range gs.capsules {
		grid[c.Y][c.X] = 'o'
	}
	for _, g := range gs.agents[1:] {
		if g.ScaredTimer > 0 {
			grid[g.Position.Y][g.Position.X] = 'S'
		} else {
			grid[g.Position.Y][g.Position.X] = 'G'
		}
	}
	p := gs.agents[Pacman].Position
	grid[p.Y][p.X] = 'P'

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Score: %.0f\n", gs.score)
	return sb.String()
}
