package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameState(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, "Player1", gs.Player())
		require.Len(t, gs.LegalMoves(), NumCells)
		require.Equal(t, "", gs.Winner())
		require.Equal(t, PassAction, gs.LastAction)
	})

	t.Run("playing returns a new state and alternates players", func(t *testing.T) {
		gs := NewGameState()

		next := gs.Play(Action(40)).(*GameState)

		require.Equal(t, Empty, gs.Board[4][4], "Original state should not change")
		require.Equal(t, PlayerOne, next.Board[4][4])
		require.Equal(t, "Player2", next.Player())
		require.Equal(t, Action(40), next.LastAction)
		require.Equal(t, 1, next.Plies)
		require.Len(t, next.LegalMoves(), NumCells-1)
		require.NotEqual(t, gs.Hash(), next.Hash())
	})

	t.Run("counts captured stones per player", func(t *testing.T) {
		gs := NewGameState()
		for _, a := range []Action{0, 1, 80, 2, 3} { // +1 (0,0), -1 (0,1), +1 (8,8), -1 (0,2), +1 (0,3)
			gs = gs.Play(a).(*GameState)
		}

		require.Equal(t, [2]int{2, 0}, gs.Captured)
		require.Equal(t, PlayerOne, gs.Board[0][1])
		require.False(t, IsTerminal(gs.Board, gs.CurrentPlayer), "Captures never end the game")
	})

	t.Run("a five-in-a-row has no legal moves and a winner", func(t *testing.T) {
		gs := NewGameState()
		for _, a := range []Action{36, 0, 37, 1, 38, 2, 39, 3, 40} {
			gs = gs.Play(a).(*GameState)
		}

		require.Equal(t, "Player1", gs.Winner())
		require.Empty(t, gs.LegalMoves())
	})

	t.Run("occupied cells and pass are rejected", func(t *testing.T) {
		gs := NewGameState()
		next, err := gs.Apply(10)
		require.NoError(t, err)

		_, err = next.Apply(10)
		require.Error(t, err)

		_, err = next.Apply(PassAction)
		require.ErrorIs(t, err, ErrOutOfBounds)

		require.Panics(t, func() { next.Play(Action(10)) })
	})

	t.Run("canonical board is from the mover's view", func(t *testing.T) {
		gs := NewGameState().Play(Action(0)).(*GameState)

		require.Equal(t, PlayerTwo, gs.Canonical()[0][0])
	})
}
