package game

import "fmt"

type direction struct {
	dr, dc int
}

// compass holds the 8 directions checked for custodial captures.
var compass = [8]direction{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Captures returns the enemy cells flanked by a stone placed at pos: for every
// direction, cells at offsets 1 and 2 must hold the opponent and the cell at offset 3
// must hold stone. Patterns running off the board never match.
func Captures(b Board, stone Stone, pos Position) []Position {
	var captured []Position
	for _, d := range compass {
		captured = append(captured, flanked(&b, stone, pos, d)...)
	}
	return captured
}

func flanked(b *Board, stone Stone, pos Position, d direction) []Position {
	one := pos.add(d)
	two := one.add(d)
	three := two.add(d)
	if !three.InBounds() {
		return nil
	}
	enemy := stone.Opponent()
	if b.at(one) == enemy && b.at(two) == enemy && b.at(three) == stone {
		return []Position{one, two}
	}
	return nil
}

// Place puts stone at pos and resolves captures, returning the new board. A board
// holding a value outside {-1, 0, 1} is rejected with ErrInvariantViolation.
//
// The target cell is not checked for emptiness; callers only offer legal actions.
// Captured cells are overwritten with the capturing stone rather than emptied. This
// matches the rule set the engine was built against, not tournament Pente.
func Place(b Board, stone Stone, pos Position) (Board, error) {
	if err := checkPlayer(stone); err != nil {
		return b, err
	}
	if err := b.Validate(); err != nil {
		return b, err
	}
	if !pos.InBounds() {
		return b, fmt.Errorf("position %v: %w", pos, ErrOutOfBounds)
	}
	out := b
	out[pos.Row][pos.Col] = stone
	for _, p := range Captures(b, stone, pos) {
		out[p.Row][p.Col] = stone
	}
	return out, nil
}

// ApplyMove places stone at the cell addressed by action.
func ApplyMove(b Board, stone Stone, action Action) (Board, error) {
	pos, err := action.Position()
	if err != nil {
		return b, err
	}
	return Place(b, stone, pos)
}

// NextState applies player's action and hands the turn to the opponent.
func NextState(b Board, player Stone, action Action) (Board, Stone, error) {
	out, err := ApplyMove(b, player, action)
	if err != nil {
		return b, player, err
	}
	return out, player.Opponent(), nil
}
