package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"pente/game"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID          int
	Goroutines  int
	Duration    time.Duration
	Episodes    int
	Cutoff      int
	Temperature float64 // 0 picks the most visited move
	Evaluate    game.Evaluate
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of Player1
	Agent2 int // AgentConfig.ID of Player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// ExampleRecord is one training example: a canonical board, the search policy and the
// final outcome from the point of view of the player to move.
type ExampleRecord struct {
	Game   int // GameRecord.ID
	Board  game.Board
	Policy game.Policy
	Value  float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates dir/name/<timestamp> and writes every file there.
func NewWriter(dir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "goroutines", "duration", "episodes", "cutoff", "temperature"}
	return w.write("agent_configs.csv", header, len(configs), func(i int) []string {
		config := configs[i]
		return []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Cutoff),
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves", "captured1", "captured2"}
	return w.write("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			game.PlayerName(record.StartingPlayer),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Captured[0]),
			strconv.Itoa(record.Captured[1]),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "duration", "episodes", "decisive_rollouts", "evaluated_rollouts", "mean_rollout_plies", "is_tree_reset"}
	return w.write("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			game.PlayerName(record.Player),
			strconv.Itoa(int(record.Action)),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.DecisiveRollouts),
			strconv.Itoa(record.EvaluatedRollouts),
			strconv.FormatFloat(record.MeanRolloutPlies(), 'f', 2, 64),
			strconv.FormatBool(record.IsTreeReset),
		}
	})
}

// WriteExamples stores one row per example: game, board key, value and the
// ActionSize policy entries.
func (w *Writer) WriteExamples(records []ExampleRecord) error {
	header := []string{"game", "board", "value"}
	for a := 0; a < game.ActionSize; a++ {
		header = append(header, "pi"+strconv.Itoa(a))
	}
	return w.write("examples.csv", header, len(records), func(i int) []string {
		record := records[i]
		row := make([]string, 0, len(header))
		row = append(row,
			strconv.Itoa(record.Game),
			game.SerializeForLookup(record.Board),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
		)
		for _, p := range record.Policy {
			row = append(row, strconv.FormatFloat(p, 'g', -1, 64))
		}
		return row
	})
}

func (w *Writer) write(name string, header []string, n int, row func(i int) []string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
