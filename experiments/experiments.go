package experiments

import (
	"pacman/agent"
	"pacman/config"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type job struct {
	id    int // GameRecord.ID
	agent metrics.AgentConfig
	seed  uint64
}

type result struct {
	game  metrics.GameMetric
	moves []metrics.MoveMetric
}

// Run plays cfg.Games games for every agent and writes the records under
// <output>/<name>/<run id>, returning that directory. Game i of every agent uses seed cfg.Seed+i so
// agents face the same ghost dice.
func Run(cfg config.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", errors.WithMessage(err, "invalid config")
	}
	layout, err := game.LookupLayout(cfg.Layout)
	if err != nil {
		return "", err
	}
	ghosts, err := agent.ParseGhost(cfg.Ghosts)
	if err != nil {
		return "", err
	}

	setup := metrics.Setup{
		RunID:     uuid.NewString(),
		Name:      cfg.Name,
		Layout:    layout.Name,
		Ghosts:    ghosts.String(),
		Agents:    cfg.Agents,
		NumGames:  cfg.Games,
		Seed:      cfg.Seed,
		StartTime: time.Now(),
	}

	jobs := make([]job, 0, len(cfg.Agents)*cfg.Games)
	for _, a := range cfg.Agents {
		for i := 0; i < cfg.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, agent: a, seed: cfg.Seed + uint64(i)})
		}
	}

	log.Info().Msgf("starting %s experiment %s: %d agents, %d games each on %s", cfg.Name, setup.RunID, len(cfg.Agents), cfg.Games, layout.Name)

	results := make([]result, len(jobs))
	var g errgroup.Group
	g.SetLimit(cfg.Parallelism)
	for i, j := range jobs {
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d (agent %d, seed %d)...", j.id, len(jobs), j.agent.ID, j.seed)
			gameMetric, moveMetrics, err := runGame(layout, ghosts, j.agent, j.seed, cfg.MaxMoves)
			if err != nil {
				return errors.WithMessagef(err, "game %d", j.id)
			}
			results[i] = result{game: gameMetric, moves: moveMetrics}
			log.Info().Msgf("completed game %d of %d: %s with score %.0f", j.id, len(jobs), gameMetric.Outcome, gameMetric.Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msgf("completed %s experiment in %s", cfg.Name, setup.Duration)

	gameRecords := make([]metrics.GameRecord, 0, len(jobs))
	moveRecords := []metrics.MoveRecord{}
	for i, j := range jobs {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         j.id,
			Agent:      j.agent.ID,
			GameMetric: results[i].game,
		})
		for _, mm := range results[i].moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       j.id,
				MoveMetric: mm,
			})
		}
	}

	dir := filepath.Join(cfg.Output, cfg.Name, setup.RunID)
	if err := write(dir, setup, gameRecords, moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", dir)
	return dir, nil
}

func write(dir string, setup metrics.Setup, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteSetup(setup); err != nil {
		return errors.Wrap(err, "failed to store setup")
	}
	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	return nil
}

// runGame plays one seeded game of a Pacman agent against a full set of ghosts.
func runGame(layout *game.Layout, ghosts agent.GhostKind, agentConfig metrics.AgentConfig, seed uint64, maxMoves int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	r := rand.New(rand.NewSource(seed))
	pacman, err := agent.New(agentConfig, r)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	agents := []agent.Agent{pacman}
	for i := 1; i <= layout.NumGhosts(); i++ {
		ghost, err := agent.NewGhost(ghosts, i, r)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		agents = append(agents, ghost)
	}

	e := engine.LocalEngine(game.NewGameState(layout), agents, maxMoves)
	e.Layout = layout.Name
	e.Seed = seed
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}
