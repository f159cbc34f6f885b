package game

import (
	"errors"
	"fmt"
)

const (
	Size       = 9
	NumCells   = Size * Size
	PassAction = Action(NumCells) // Reserved, never resolved to a board cell
	ActionSize = NumCells + 1
)

var (
	ErrOutOfBounds        = errors.New("out of bounds")
	ErrInvariantViolation = errors.New("invariant violation")
)

// Stone is the content of a board cell. A player is identified by the stone it places.
type Stone int8

const (
	PlayerTwo Stone = -1
	Empty     Stone = 0
	PlayerOne Stone = 1
)

// Opponent returns the arithmetic opponent (+1 <-> -1).
func (s Stone) Opponent() Stone {
	if s == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// IsPlayer reports whether s can be placed on the board.
func (s Stone) IsPlayer() bool {
	return s == PlayerOne || s == PlayerTwo
}

func (s Stone) valid() bool {
	return s >= PlayerTwo && s <= PlayerOne
}

func checkPlayer(s Stone) error {
	if !s.IsPlayer() {
		return fmt.Errorf("stone %d is not a player: %w", s, ErrInvariantViolation)
	}
	return nil
}

// Position is a (row, column) cell coordinate.
type Position struct {
	Row, Col int
}

func (p Position) add(d direction) Position {
	return Position{Row: p.Row + d.dr, Col: p.Col + d.dc}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Action returns the flat action index of p.
func (p Position) Action() Action {
	return Action(p.Row*Size + p.Col)
}

// Action is a flat index into the action vector: 0..80 are board cells, 81 is a pass.
type Action int

// Position resolves a board action to its cell. The pass action is out of bounds.
func (a Action) Position() (Position, error) {
	if a < 0 || a >= NumCells {
		return Position{}, fmt.Errorf("action %d: %w", a, ErrOutOfBounds)
	}
	return Position{Row: int(a) / Size, Col: int(a) % Size}, nil
}

func (a Action) String() string {
	pos, err := a.Position()
	if err != nil {
		if a == PassAction {
			return "pass"
		}
		return fmt.Sprintf("action(%d)", int(a))
	}
	return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
}

// Board is a 9x9 grid of stones. It is a value: assignment and function calls copy it.
type Board [Size][Size]Stone

// InitialBoard returns the empty starting board.
func InitialBoard() Board {
	return Board{}
}

// BoardFromRows builds a Board from a nested slice, checking its shape and cell values.
func BoardFromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("board has %d rows, want %d: %w", len(rows), Size, ErrInvariantViolation)
	}
	for i, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), Size, ErrInvariantViolation)
		}
		for j, v := range row {
			if v < -1 || v > 1 {
				return b, fmt.Errorf("cell (%d,%d) holds %d: %w", i, j, v, ErrInvariantViolation)
			}
			b[i][j] = Stone(v)
		}
	}
	return b, nil
}

// Validate reports the first cell holding a value outside {-1, 0, 1}.
func (b Board) Validate() error {
	for i := range b {
		for j, s := range b[i] {
			if !s.valid() {
				return fmt.Errorf("cell (%d,%d) holds %d: %w", i, j, s, ErrInvariantViolation)
			}
		}
	}
	return nil
}

// StoneAt returns the content of the cell at pos.
func StoneAt(b Board, pos Position) (Stone, error) {
	if !pos.InBounds() {
		return Empty, fmt.Errorf("position %v: %w", pos, ErrOutOfBounds)
	}
	return b[pos.Row][pos.Col], nil
}

// at is the tolerant accessor used by pattern scans: off-board cells read as Empty.
func (b *Board) at(p Position) Stone {
	if !p.InBounds() {
		return Empty
	}
	return b[p.Row][p.Col]
}

// Full reports whether no empty cell remains.
func (b Board) Full() bool {
	for i := range b {
		for _, s := range b[i] {
			if s == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold s.
func (b Board) Count(s Stone) int {
	n := 0
	for i := range b {
		for _, c := range b[i] {
			if c == s {
				n++
			}
		}
	}
	return n
}
