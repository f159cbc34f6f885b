package game

// ActionVector flags the legal actions of a position with 1.
type ActionVector [ActionSize]uint8

// LegalMoves marks every empty cell as legal for player. The pass slot is never set,
// not even on a full board.
func LegalMoves(b Board, player Stone) ActionVector {
	var valids ActionVector
	for i := range b {
		for j, s := range b[i] {
			if s == Empty {
				valids[i*Size+j] = 1
			}
		}
	}
	return valids
}

// Actions lists the legal actions of v in increasing order.
func (v ActionVector) Actions() []Action {
	actions := make([]Action, 0, NumCells)
	for a, ok := range v {
		if ok == 1 {
			actions = append(actions, Action(a))
		}
	}
	return actions
}
