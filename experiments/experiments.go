package experiments

import (
	"fmt"
	"pente/engine"
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher"
	"pente/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Config describes a batch of games.
type Config struct {
	Games    int // Per match up
	MaxTurns int
	OutDir   string
}

// RunSelfPlay plays cfg.Games games of an agent against itself and stores the
// games, the moves and the symmetry-augmented training examples.
func RunSelfPlay(cfg Config, config metrics.AgentConfig) (string, error) {
	// Both seats share the config for the same playing strength
	matchUps := [][2]metrics.AgentConfig{{config, config}}
	return runExperiment("self_play", cfg, []metrics.AgentConfig{config}, matchUps, true)
}

// RunCutoffExperiment pairs a full-playout agent against agents cutting rollouts
// short and scoring the position with the line evaluation.
func RunCutoffExperiment(cfg Config, base metrics.AgentConfig) (string, error) {
	baseline := base
	baseline.ID, baseline.Cutoff = 0, 0
	cutoffConfigs := []metrics.AgentConfig{baseline}
	for i, cutoff := range []int{2, 5, 10, 20} {
		config := base
		config.ID, config.Cutoff = i+1, cutoff
		cutoffConfigs = append(cutoffConfigs, config)
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range cutoffConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("cutoff", cfg, cutoffConfigs, matchUps, false)
}

// RunParallelizationExperiment pairs a sequential agent against agents searching
// with more goroutines under the same budget.
func RunParallelizationExperiment(cfg Config, base metrics.AgentConfig) (string, error) {
	baseline := base
	baseline.ID, baseline.Goroutines = 0, 1
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8, 16} {
		config := base
		config.ID, config.Goroutines = i+1, goroutines
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("parallelization", cfg, configs, matchUps, false)
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, keepExamples bool) (string, error) {
	if cfg.Games <= 0 || cfg.MaxTurns <= 0 {
		return "", fmt.Errorf("invalid experiment config %+v", cfg)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	exampleRecords := []metrics.ExampleRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < cfg.Games; i++ {
			// Alternate the starting agent
			config1, config2 := matchUp[0], matchUp[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			winner, gameMetric, moveMetrics, examples := runGame(config1, config2, cfg.MaxTurns)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}
			if keepExamples {
				for _, ex := range examples {
					exampleRecords = append(exampleRecords, metrics.ExampleRecord{
						Game:   count,
						Board:  ex.Board,
						Policy: ex.Policy,
						Value:  ex.Value,
					})
				}
			}

			if winner == "" {
				winner = "none"
			}
			log.Info().Msgf("completed matchup %d of %d game %d after %d moves with winner: %s", mi+1, len(matchUps), i+1, gameMetric.TotalMoves, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, cfg.OutDir, configs, gameRecords, moveRecords, exampleRecords)
}

func store(name, dir string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, examples []metrics.ExampleRecord) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if len(examples) > 0 {
		if err := writer.WriteExamples(examples); err != nil {
			return "", fmt.Errorf("failed to write examples: %w", err)
		}
	}
	log.Info().Msgf("stored %d games, %d moves and %d examples in %s", len(games), len(moves), len(examples), writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(config1, config2 metrics.AgentConfig, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, []engine.Example) {
	e := engine.NewSelfPlay(newAgent(config1), newAgent(config2), maxTurns)
	return e.Run()
}

func newAgent(config metrics.AgentConfig) agent.Agent {
	mcts := createMCTS(config)
	if config.Temperature > 0 {
		return agent.NewTrainingAgent(mcts, config.Temperature)
	}
	return agent.NewEvaluationAgent(mcts)
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	evaluate := config.Evaluate
	if evaluate == nil {
		evaluate = game.EvaluateLines
	}
	options = append(options, searcher.WithEvaluationFn(evaluate))

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
