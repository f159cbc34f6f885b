package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("every cell is legal on an empty board", func(t *testing.T) {
		valids := LegalMoves(InitialBoard(), PlayerOne)

		for a := 0; a < NumCells; a++ {
			require.Equal(t, uint8(1), valids[a], "action %d", a)
		}
		require.Equal(t, uint8(0), valids[PassAction], "Pass should never be legal")
		require.Len(t, valids.Actions(), NumCells)
	})

	t.Run("legal iff the cell is empty, for either player", func(t *testing.T) {
		b := InitialBoard()
		b[0][0] = PlayerOne
		b[3][5] = PlayerTwo
		b[8][8] = PlayerOne

		for _, player := range []Stone{PlayerOne, PlayerTwo} {
			valids := LegalMoves(b, player)
			for a := 0; a < NumCells; a++ {
				want := uint8(0)
				if b[a/Size][a%Size] == Empty {
					want = 1
				}
				require.Equal(t, want, valids[a], "action %d", a)
			}
			require.Equal(t, uint8(0), valids[PassAction])
		}
	})

	t.Run("a full board has no legal moves, pass included", func(t *testing.T) {
		var b Board
		for i := range b {
			for j := range b[i] {
				b[i][j] = Stone(1 - 2*((i+j)%2))
			}
		}

		valids := LegalMoves(b, PlayerTwo)

		require.Equal(t, ActionVector{}, valids)
		require.Len(t, valids, ActionSize)
		require.Empty(t, valids.Actions())
		require.True(t, b.Full())
	})

	t.Run("is deterministic", func(t *testing.T) {
		b := InitialBoard()
		b[4][4] = PlayerTwo

		require.Equal(t, LegalMoves(b, PlayerOne), LegalMoves(b, PlayerOne))
	})
}
