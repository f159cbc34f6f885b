package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func line(b Board, s Stone, from Position, dr, dc, n int) Board {
	for k := 0; k < n; k++ {
		b[from.Row+k*dr][from.Col+k*dc] = s
	}
	return b
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		winner Stone
	}{
		{"empty board", InitialBoard(), Empty},
		{"row", line(Board{}, PlayerOne, Position{4, 0}, 0, 1, 5), PlayerOne},
		{"row against the east edge", line(Board{}, PlayerTwo, Position{8, 4}, 0, 1, 5), PlayerTwo},
		{"column", line(Board{}, PlayerTwo, Position{2, 7}, 1, 0, 5), PlayerTwo},
		{"diagonal", line(Board{}, PlayerOne, Position{0, 0}, 1, 1, 5), PlayerOne},
		{"anti-diagonal", line(Board{}, PlayerTwo, Position{1, 6}, 1, -1, 5), PlayerTwo},
		{"anti-diagonal in the corner", line(Board{}, PlayerOne, Position{4, 4}, 1, -1, 5), PlayerOne},
		{"four in a row", line(Board{}, PlayerOne, Position{3, 3}, 0, 1, 4), Empty},
		{"six in a row", line(Board{}, PlayerOne, Position{3, 1}, 0, 1, 6), PlayerOne},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.winner, Winner(tt.board))
			require.Equal(t, tt.winner != Empty, IsTerminal(tt.board, PlayerOne))
		})
	}

	t.Run("broken run", func(t *testing.T) {
		b := line(Board{}, PlayerOne, Position{0, 0}, 0, 1, 5)
		b[0][2] = PlayerTwo

		require.Equal(t, Empty, Winner(b))
	})

	t.Run("simultaneous runs resolve in row-major scan order", func(t *testing.T) {
		b := line(Board{}, PlayerOne, Position{6, 0}, 0, 1, 5)
		b = line(b, PlayerTwo, Position{0, 0}, 0, 1, 5)

		require.Equal(t, PlayerTwo, Winner(b), "The run found first from the top row wins")
	})

	t.Run("simultaneous runs from the same origin resolve in line order", func(t *testing.T) {
		// Vertical -1 run and horizontal +1 run both discovered from row 0
		b := line(Board{}, PlayerTwo, Position{0, 0}, 1, 0, 5)
		b = line(b, PlayerOne, Position{0, 1}, 0, 1, 5)

		require.Equal(t, PlayerTwo, Winner(b), "Origin (0,0) is scanned before (0,1)")
	})
}

func TestFiveInARowEndToEnd(t *testing.T) {
	b := InitialBoard()
	for col := 0; col < 5; col++ {
		b = place(t, b, PlayerOne, 4, col)
	}

	require.Equal(t, PlayerOne, Winner(b))
	require.True(t, IsTerminal(b, PlayerTwo))
}
