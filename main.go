package main

import (
	"flag"
	"os"
	"pente/experiments"
	"pente/experiments/metrics"
	"pente/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "selfplay", "experiment to run: selfplay, cutoff or parallel")
	games := flag.Int("games", meta.GAMES, "games per match up")
	maxTurns := flag.Int("turns", meta.MAX_TURNS, "maximum moves per game")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "search goroutines per agent")
	episodes := flag.Int("episodes", meta.EPISODES, "search episodes per move")
	duration := flag.Duration("duration", meta.DURATION, "search time per move, overrides -episodes when set")
	cutoff := flag.Int("cutoff", meta.WITH_CUTOFF, "rollout depth before evaluating, 0 for full playouts")
	temperature := flag.Float64("temperature", meta.TEMPERATURE, "move sampling temperature, 0 plays the most visited move")
	out := flag.String("out", meta.OUT_DIR, "output directory")
	debug := flag.Bool("debug", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := experiments.Config{Games: *games, MaxTurns: *maxTurns, OutDir: *out}
	config := metrics.AgentConfig{
		ID:          1,
		Goroutines:  *goroutines,
		Cutoff:      *cutoff,
		Temperature: *temperature,
	}
	if *duration > 0 {
		config.Duration = *duration
	} else {
		config.Episodes = *episodes
	}

	var dir string
	var err error
	switch *experiment {
	case "selfplay":
		dir, err = experiments.RunSelfPlay(cfg, config)
	case "cutoff":
		dir, err = experiments.RunCutoffExperiment(cfg, config)
	case "parallel":
		dir, err = experiments.RunParallelizationExperiment(cfg, config)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}

	log.Info().Msgf("results written to %s", dir)
}
