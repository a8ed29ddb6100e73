package engine

import (
	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State    game.State
	Agents   []agent.Agent // Indexed like the state's agents, Pacman first
	MaxMoves int
	Layout   string
	Seed     uint64
}

// LocalEngine returns an engine playing state with one agent per seat. maxMoves counts single
// agent moves, not rounds.
func LocalEngine(state game.State, agents []agent.Agent, maxMoves int) *Local {
	if len(agents) != state.NumAgents() {
		panic("number of agents does not match the state")
	}
	if maxMoves <= 0 {
		panic("max moves must be positive")
	}
	return &Local{
		State:    state,
		Agents:   agents,
		MaxMoves: maxMoves,
	}
}

// Run executes the game loop. Only Pacman's decisions are recorded as move metrics.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.Layout,
		Seed:      e.Seed,
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("starting game on %s with %d ghosts", e.Layout, len(e.Agents)-1)

	moves, passes := 0, 0
	for agentIndex := game.Pacman; !game.IsTerminal(e.State) && moves < e.MaxMoves; agentIndex = (agentIndex + 1) % len(e.Agents) {
		legal := e.State.LegalActions(agentIndex)
		if len(legal) == 0 {
			// Nothing to do, the turn passes
			passes++
			if passes == len(e.Agents) {
				log.Warn().Msg("no agent can move, stopping the game")
				break
			}
			continue
		}
		passes = 0

		action, searchMetric := e.Agents[agentIndex].GetAction(e.State)
		if utils.FindIndex(legal, action) < 0 {
			log.Warn().Msgf("agent %d chose illegal action %s, playing %s instead", agentIndex, action, legal[0])
			action = legal[0]
		}
		moves++

		if agentIndex == game.Pacman {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         moves,
				Agent:        agentIndex,
				Action:       action.String(),
				SearchMetric: searchMetric,
			})
		}

		e.State = e.State.Successor(agentIndex, action)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	gameMetric.Score = e.State.Score()
	switch {
	case e.State.IsWin():
		gameMetric.Outcome = metrics.Win
	case e.State.IsLose():
		gameMetric.Outcome = metrics.Lose
	default:
		gameMetric.Outcome = metrics.Timeout
	}

	log.Info().Msgf("game on %s ended after %d moves: %s with score %.0f", e.Layout, moves, gameMetric.Outcome, gameMetric.Score)
	return gameMetric, moveMetrics
}
