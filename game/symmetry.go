package game

import "fmt"

// Policy is a probability per action, pass included.
type Policy [ActionSize]float64

// PolicyFromSlice copies a policy of exactly ActionSize entries.
func PolicyFromSlice(pi []float64) (Policy, error) {
	var p Policy
	if len(pi) != ActionSize {
		return p, fmt.Errorf("policy has %d entries, want %d: %w", len(pi), ActionSize, ErrInvariantViolation)
	}
	copy(p[:], pi)
	return p, nil
}

// Sample is a board paired with the policy searched from it.
type Sample struct {
	Board  Board
	Policy Policy
}

// Canonical returns the board from player's point of view: player's stones are +1.
func Canonical(b Board, player Stone) Board {
	if player == PlayerOne {
		return b
	}
	for i := range b {
		for j := range b[i] {
			b[i][j] = -b[i][j]
		}
	}
	return b
}

// Transform is an element of the dihedral group of the square: Rotations quarter
// turns counter-clockwise, then an optional left-right mirror.
type Transform struct {
	Rotations int
	Flip      bool
}

// Transforms enumerates the 8 symmetries in the order Symmetries emits them.
func Transforms() []Transform {
	ts := make([]Transform, 0, 8)
	for k := 1; k <= 4; k++ {
		for _, flip := range []bool{true, false} {
			ts = append(ts, Transform{Rotations: k, Flip: flip})
		}
	}
	return ts
}

// Inverse returns the transform undoing t. Mirrored elements are reflections and
// therefore their own inverse.
func (t Transform) Inverse() Transform {
	if t.Flip {
		return t
	}
	k := 4 - t.Rotations%4
	return Transform{Rotations: k}
}

func (t Transform) Board(b Board) Board {
	return Board(apply(t, [Size][Size]Stone(b)))
}

// Policy transforms the board-shaped prefix of pi. The pass entry is kept as is.
func (t Transform) Policy(pi Policy) Policy {
	var grid [Size][Size]float64
	for a := 0; a < NumCells; a++ {
		grid[a/Size][a%Size] = pi[a]
	}
	grid = apply(t, grid)

	var out Policy
	for a := 0; a < NumCells; a++ {
		out[a] = grid[a/Size][a%Size]
	}
	out[PassAction] = pi[PassAction]
	return out
}

// Symmetries returns the 8 symmetric variants of (b, pi) for training augmentation.
func Symmetries(b Board, pi Policy) []Sample {
	ts := Transforms()
	samples := make([]Sample, 0, len(ts))
	for _, t := range ts {
		samples = append(samples, Sample{Board: t.Board(b), Policy: t.Policy(pi)})
	}
	return samples
}

func apply[T any](t Transform, g [Size][Size]T) [Size][Size]T {
	for k := 0; k < t.Rotations%4; k++ {
		g = rotate(g)
	}
	if t.Flip {
		g = mirror(g)
	}
	return g
}

// rotate turns g a quarter counter-clockwise.
func rotate[T any](g [Size][Size]T) [Size][Size]T {
	var out [Size][Size]T
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = g[c][Size-1-r]
		}
	}
	return out
}

func mirror[T any](g [Size][Size]T) [Size][Size]T {
	var out [Size][Size]T
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = g[r][Size-1-c]
		}
	}
	return out
}
