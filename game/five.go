package game

const runLength = 5

// lines are scanned in this order; the first three fix the tie-break between
// simultaneous runs, the anti-diagonal comes last.
var lines = [4]direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Winner returns the stone owning a five-in-a-row, or Empty if there is none.
//
// Origins are scanned row-major and, per origin, line directions in order. If both
// players own a run the first one found is returned; the choice carries no meaning
// beyond being deterministic.
func Winner(b Board) Stone {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			origin := Position{Row: i, Col: j}
			for _, d := range lines {
				if runFrom(&b, origin, d, PlayerOne) {
					return PlayerOne
				}
				if runFrom(&b, origin, d, PlayerTwo) {
					return PlayerTwo
				}
			}
		}
	}
	return Empty
}

func runFrom(b *Board, origin Position, d direction, player Stone) bool {
	end := Position{Row: origin.Row + (runLength-1)*d.dr, Col: origin.Col + (runLength-1)*d.dc}
	if !end.InBounds() {
		return false
	}
	p := origin
	for k := 0; k < runLength; k++ {
		if b.at(p) != player {
			return false
		}
		p = p.add(d)
	}
	return true
}

// IsTerminal reports whether the game is over. Only five-in-a-row ends a game;
// captured pairs are not counted.
func IsTerminal(b Board, player Stone) bool {
	return Winner(b) != Empty
}
