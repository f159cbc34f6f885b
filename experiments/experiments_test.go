package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"pente/experiments/metrics"
	"pente/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, dir, name string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunSelfPlay(t *testing.T) {
	cfg := Config{Games: 2, MaxTurns: 3, OutDir: t.TempDir()}
	config := metrics.AgentConfig{ID: 7, Goroutines: 2, Episodes: 20, Cutoff: 2, Temperature: 1}

	dir, err := RunSelfPlay(cfg, config)

	require.NoError(t, err)
	require.Len(t, readRows(t, dir, "agent_configs.csv"), 2)
	require.Len(t, readRows(t, dir, "game_records.csv"), 1+2)
	require.Len(t, readRows(t, dir, "move_records.csv"), 1+2*3)
	examples := readRows(t, dir, "examples.csv")
	require.Len(t, examples, 1+2*3*8)
	require.Len(t, examples[1], 3+game.ActionSize)
}

func TestRunCutoffExperiment(t *testing.T) {
	cfg := Config{Games: 1, MaxTurns: 2, OutDir: t.TempDir()}

	dir, err := RunCutoffExperiment(cfg, metrics.AgentConfig{Goroutines: 1, Episodes: 10})

	require.NoError(t, err)
	require.Len(t, readRows(t, dir, "agent_configs.csv"), 1+5)
	require.Len(t, readRows(t, dir, "game_records.csv"), 1+4)
	_, err = os.Stat(filepath.Join(dir, "examples.csv"))
	require.True(t, os.IsNotExist(err), "Only self-play keeps training examples")
}

func TestRunExperimentAlternatesStartingAgent(t *testing.T) {
	cfg := Config{Games: 2, MaxTurns: 1, OutDir: t.TempDir()}

	dir, err := RunParallelizationExperiment(cfg, metrics.AgentConfig{Episodes: 5})

	require.NoError(t, err)
	games := readRows(t, dir, "game_records.csv")
	require.Len(t, games, 1+2*4)
	require.Equal(t, games[1][1], games[2][2])
	require.Equal(t, games[1][2], games[2][1])
}

func TestRunExperimentRejectsInvalidConfig(t *testing.T) {
	_, err := RunSelfPlay(Config{Games: 0, MaxTurns: 10, OutDir: t.TempDir()}, metrics.AgentConfig{Episodes: 1})

	require.Error(t, err)
}
