package game

import "fmt"

// GameState threads a Board through a game for a searcher. Like Board it is a value;
// Play always returns a new GameState.
type GameState struct {
	Board         Board  // Current position
	CurrentPlayer Stone  // The player to move
	LastAction    Action // The last action played, PassAction before the first move
	Captured      [2]int // Stones captured by PlayerOne and PlayerTwo; never ends the game
	Plies         int    // Number of moves played
}

// NewGameState returns the initial position with PlayerOne to move.
func NewGameState() *GameState {
	return &GameState{
		Board:         InitialBoard(),
		CurrentPlayer: PlayerOne,
		LastAction:    PassAction,
	}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

// Player returns the identifier of the current player.
func (gs GameState) Player() string {
	return PlayerName(gs.CurrentPlayer)
}

// PlayerName maps a stone to the identifier used by searchers and records.
func PlayerName(s Stone) string {
	switch s {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	default:
		return ""
	}
}

// LegalMoves returns all legal moves for the current player. A finished game has none.
func (gs GameState) LegalMoves() []Move {
	if IsTerminal(gs.Board, gs.CurrentPlayer) {
		return nil
	}
	actions := LegalMoves(gs.Board, gs.CurrentPlayer).Actions()
	moves := make([]Move, len(actions))
	for i, a := range actions {
		moves[i] = a
	}
	return moves
}

// Play applies move for the current player. It panics on moves not produced by
// LegalMoves.
func (gs GameState) Play(move Move) State {
	next, err := gs.Apply(move.(Action))
	if err != nil {
		panic(err)
	}
	return next
}

// Apply is Play with the error returned instead of panicking.
func (gs GameState) Apply(action Action) (*GameState, error) {
	pos, err := action.Position()
	if err != nil {
		return nil, err
	}
	if gs.Board[pos.Row][pos.Col] != Empty {
		return nil, fmt.Errorf("cannot play %v: cell is occupied", action)
	}

	newGs := gs.Copy()
	captured := len(Captures(gs.Board, gs.CurrentPlayer, pos))
	newGs.Board, newGs.CurrentPlayer, err = NextState(gs.Board, gs.CurrentPlayer, action)
	if err != nil {
		return nil, err
	}
	newGs.Captured[playerIndex(gs.CurrentPlayer)] += captured
	newGs.LastAction = action
	newGs.Plies++
	return newGs, nil
}

func playerIndex(s Stone) int {
	if s == PlayerOne {
		return 0
	}
	return 1
}

func (gs GameState) Hash() StateHash {
	return Hash(gs.Board, gs.CurrentPlayer)
}

// Winner returns the identifier of the player owning a five-in-a-row, "" if none.
func (gs GameState) Winner() string {
	return PlayerName(Winner(gs.Board))
}

// Canonical returns the board from the current player's point of view.
func (gs GameState) Canonical() Board {
	return Canonical(gs.Board, gs.CurrentPlayer)
}
