package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	markOne   = 'O'
	markTwo   = 'X'
	markEmpty = '-'
	rowSep    = '/'
)

// SerializeForLookup encodes b as one character per cell with rows separated by '/'.
// Distinct boards always produce distinct keys; a cell outside {-1, 0, 1} is written
// as its value in brackets, which ParseLookup rejects.
func SerializeForLookup(b Board) string {
	var sb strings.Builder
	sb.Grow(NumCells + Size - 1)
	for i := range b {
		if i > 0 {
			sb.WriteByte(rowSep)
		}
		for _, s := range b[i] {
			switch s {
			case PlayerOne:
				sb.WriteByte(markOne)
			case PlayerTwo:
				sb.WriteByte(markTwo)
			case Empty:
				sb.WriteByte(markEmpty)
			default:
				// Out of range values keep their raw value so keys stay distinct
				fmt.Fprintf(&sb, "[%d]", s)
			}
		}
	}
	return sb.String()
}

// ParseLookup is the inverse of SerializeForLookup.
func ParseLookup(key string) (Board, error) {
	var b Board
	rows := strings.Split(key, string(rowSep))
	if len(rows) != Size {
		return b, fmt.Errorf("key has %d rows, want %d: %w", len(rows), Size, ErrInvariantViolation)
	}
	for i, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("key row %d has %d cells, want %d: %w", i, len(row), Size, ErrInvariantViolation)
		}
		for j := 0; j < Size; j++ {
			switch row[j] {
			case markOne:
				b[i][j] = PlayerOne
			case markTwo:
				b[i][j] = PlayerTwo
			case markEmpty:
				b[i][j] = Empty
			default:
				return b, fmt.Errorf("key cell (%d,%d) is %q: %w", i, j, row[j], ErrInvariantViolation)
			}
		}
	}
	return b, nil
}

// Hash fingerprints a board together with the player to move.
func Hash(b Board, player Stone) StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int8(player))
	for i := range b {
		binary.Write(hasher, binary.LittleEndian, b[i])
	}
	return StateHash(hasher.Sum64())
}
