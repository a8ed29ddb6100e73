package main

import (
	"flag"
	"fmt"
	"os"
	"pacman/config"
	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML run file, defaults apply when empty")
	layout := flag.String("layout", meta.DEFAULT_LAYOUT, "Built-in layout name or layout file ("+strings.Join(game.LayoutNames(), ", ")+")")
	strategy := flag.String("agent", meta.DEFAULT_STRATEGY, "Pacman strategy: reflex, minimax, alphabeta or expectimax")
	evaluator := flag.String("eval", meta.DEFAULT_EVALUATOR, "Evaluation function: score, reflex or better, defaults to reflex for the reflex agent")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth in full rounds")
	ghosts := flag.String("ghosts", meta.DEFAULT_GHOSTS, "Ghost agents: random or directional")
	games := flag.Int("games", 1, "Games per agent")
	seed := flag.Uint64("seed", 0, "Seed of the first game, game i uses seed+i")
	maxMoves := flag.Int("max-moves", meta.MAX_MOVES, "Agent moves after which a game is abandoned")
	experiment := flag.String("experiment", "", "Named agent lineup ("+strings.Join(experiments.PresetNames(), ", ")+")")
	output := flag.String("output", meta.OUTPUT_DIR, "Directory for experiment records")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	dir, err := run(*configPath, *experiment, *profileMode, func(cfg *config.Config) {
		// Flags given explicitly win over the config file
		agentOverride, evalSet := false, false
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "layout":
				cfg.Layout = *layout
			case "ghosts":
				cfg.Ghosts = *ghosts
			case "games":
				cfg.Games = *games
			case "seed":
				cfg.Seed = *seed
			case "max-moves":
				cfg.MaxMoves = *maxMoves
			case "output":
				cfg.Output = *output
			case "eval":
				evalSet = true
				agentOverride = true
			case "agent", "depth":
				agentOverride = true
			}
		})
		if agentOverride {
			evaluatorName := *evaluator
			if !evalSet {
				// Left to the agent's strategy, reflex scores moves with the reflex evaluator
				evaluatorName = ""
				if s, err := searcher.ParseStrategy(*strategy); err == nil {
					evaluatorName = searcher.DefaultEvaluator(s).String()
				}
			}
			cfg.Agents = []metrics.AgentConfig{{ID: 1, Strategy: *strategy, Evaluator: evaluatorName, Depth: *depth}}
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	fmt.Println(dir)
}

// run loads the config, applies the command line overrides and plays the experiment. Profiling
// covers the whole run and is stopped before run returns, errors included.
func run(configPath, experiment, profileMode string, override func(cfg *config.Config)) (string, error) {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return "", errors.Errorf("unknown profile mode %q", profileMode)
	}

	cfg := config.Default()
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return "", err
		}
	}

	if experiment != "" {
		cfg, err = experiments.Preset(experiment, cfg)
		if err != nil {
			return "", err
		}
	}

	override(&cfg)
	return experiments.Run(cfg)
}
