package game

// windowWeights scores a 5-cell window by the number of stones of its single owner.
var windowWeights = [runLength + 1]float64{0, 1, 4, 16, 64, 256}

// EvaluateLines scores every 5-cell window along the four line directions that holds
// stones of one colour only, and compares the totals of both players to produce a
// score between -1 and 1 from the current player's perspective.
func EvaluateLines(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	current, opponent := gs.lineScores()
	return normalize(current, opponent)
}

func (gs *GameState) lineScores() (current, opponent float64) {
	scores := map[Stone]float64{}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			origin := Position{Row: i, Col: j}
			for _, d := range lines {
				if owner, n := window(&gs.Board, origin, d); owner != Empty {
					scores[owner] += windowWeights[n]
				}
			}
		}
	}
	return scores[gs.CurrentPlayer], scores[gs.CurrentPlayer.Opponent()]
}

// window returns the only colour present in the run starting at origin and its stone
// count. Mixed, empty or off-board windows return Empty.
func window(b *Board, origin Position, d direction) (Stone, int) {
	end := Position{Row: origin.Row + (runLength-1)*d.dr, Col: origin.Col + (runLength-1)*d.dc}
	if !end.InBounds() {
		return Empty, 0
	}
	owner := Empty
	n := 0
	p := origin
	for k := 0; k < runLength; k++ {
		s := b.at(p)
		if s != Empty {
			if owner != Empty && s != owner {
				return Empty, 0
			}
			owner = s
			n++
		}
		p = p.add(d)
	}
	return owner, n
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
