package searcher

import (
	"pente/game"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// openFour has Player1 to move with four stones on row 4 and the winning cell (4,4) free.
func openFour() *game.GameState {
	gs := game.NewGameState()
	for _, a := range []game.Action{36, 8, 37, 80, 38, 72, 39, 4} {
		gs = gs.Play(a).(*game.GameState)
	}
	return gs
}

func mostVisited(policy map[game.Move]float64) game.Move {
	var best game.Move
	maxVisits := -1.0
	for move, visits := range policy {
		if visits > maxVisits {
			best, maxVisits = move, visits
		}
	}
	return best
}

func TestNewMCTS(t *testing.T) {
	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS(1) })
	})

	t.Run("ignores non-positive options", func(t *testing.T) {
		m := NewMCTS(0, WithEpisodes(10), WithCutoff(-1), WithDuration(0), WithEvaluationFn(nil))

		require.Equal(t, 1, m.goroutines)
		require.Equal(t, MaxCutoff, m.cutoff)
		require.NotNil(t, m.evaluate)
		require.Zero(t, m.duration)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("runs the requested number of episodes", func(t *testing.T) {
		m := NewMCTS(4, WithEpisodes(200), WithCutoff(4), WithMetrics())

		policy, metric := m.Simulate(game.NewGameState(), nil)

		total := 0.0
		for _, visits := range policy {
			total += visits
		}
		require.Equal(t, 200.0, total, "Every episode should end in one root child")
		require.Equal(t, 200, metric.Episodes)
		require.True(t, metric.IsTreeReset)
		require.Equal(t, 4, metric.Goroutines)
	})

	t.Run("finds the winning move", func(t *testing.T) {
		m := NewMCTS(4, WithEpisodes(3000))

		policy, _ := m.Simulate(openFour(), nil)

		require.Equal(t, game.Action(40), mostVisited(policy))
	})

	t.Run("scores cutoff states with the evaluation function", func(t *testing.T) {
		var calls atomic.Int64
		evaluate := func(s game.State) float64 {
			calls.Add(1)
			return 0
		}
		m := NewMCTS(2, WithEpisodes(100), WithCutoff(1), WithEvaluationFn(evaluate), WithMetrics())

		_, metric := m.Simulate(game.NewGameState(), nil)

		require.Equal(t, int64(100), calls.Load(), "No game ends within one random move")
		require.Zero(t, metric.DecisiveRollouts)
		require.Equal(t, 100, metric.EvaluatedRollouts)
		require.Equal(t, 1.0, metric.MeanRolloutPlies())
		require.Equal(t, 1, metric.Cutoff)
	})

	t.Run("searches for a duration", func(t *testing.T) {
		m := NewMCTS(2, WithDuration(20*time.Millisecond), WithCutoff(2), WithMetrics())

		policy, metric := m.Simulate(game.NewGameState(), nil)

		require.NotEmpty(t, policy)
		require.Positive(t, metric.Episodes)
		require.GreaterOrEqual(t, metric.Duration, 20*time.Millisecond)
	})

	t.Run("a finished game has an empty policy", func(t *testing.T) {
		m := NewMCTS(2, WithEpisodes(10))
		won := openFour().Play(game.Action(40))

		policy, _ := m.Simulate(won, nil)

		require.Empty(t, policy)
	})
}

func TestTreeReuse(t *testing.T) {
	m := NewMCTS(2, WithEpisodes(500), WithCutoff(2), WithMetrics())
	state := game.NewGameState()
	policy, _ := m.Simulate(state, nil)

	// Follow the most visited line for two plies, which the tree has expanded
	first := mostVisited(policy)
	afterFirst := state.Play(first)
	firstNode := m.root.child(first)
	require.NotNil(t, firstNode)
	second := mostVisited(firstNode.Policy())
	afterSecond := afterFirst.Play(second)
	path := []Segment{
		{Move: first, StateHash: afterFirst.Hash()},
		{Move: second, StateHash: afterSecond.Hash()},
	}

	t.Run("reuses the subtree reached by the path", func(t *testing.T) {
		expected := firstNode.child(second)

		_, metric := m.Simulate(afterSecond, path)

		require.False(t, metric.IsTreeReset)
		require.Same(t, expected, m.root)
		require.Nil(t, m.root.parent)
	})

	t.Run("resets on a hash mismatch", func(t *testing.T) {
		bad := []Segment{{Move: first, StateHash: afterFirst.Hash() + 1}}

		_, metric := m.Simulate(afterFirst, bad)

		require.True(t, metric.IsTreeReset)
	})

	t.Run("resets on an unexpanded move", func(t *testing.T) {
		_, metric := m.Simulate(state, []Segment{{Move: game.PassAction}})

		require.True(t, metric.IsTreeReset)
	})
}
