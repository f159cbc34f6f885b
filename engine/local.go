package engine

import (
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher"
	"pente/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Example is a training example: the board from the point of view of the player to
// move, the search policy and the final outcome for that player.
type Example struct {
	Board  game.Board
	Policy game.Policy
	Value  float64 // 1 for a win, -1 for a loss, 0 for a draw
}

type SelfPlay struct {
	State    *game.GameState
	Agents   [2]agent.Agent // Player1, Player2
	MaxTurns int
}

type record struct {
	player game.Stone
	board  game.Board
	policy game.Policy
}

// NewSelfPlay sets up a game between two agents from the empty board.
func NewSelfPlay(agent1, agent2 agent.Agent, maxTurns int) *SelfPlay {
	if agent1 == nil || agent2 == nil {
		panic("need two agents")
	}
	if maxTurns <= 0 {
		panic("max turns must be positive")
	}
	return &SelfPlay{
		State:    game.NewGameState(),
		Agents:   [2]agent.Agent{agent1, agent2},
		MaxTurns: maxTurns,
	}
}

func seat(player game.Stone) int {
	if player == game.PlayerOne {
		return 0
	}
	return 1
}

// Run executes the game loop and returns its result with one example per
// symmetry of every searched position.
func (e *SelfPlay) Run() (string, metrics.GameMetric, []metrics.MoveMetric, []Example) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer,
		StartTime:      time.Now(),
	}
	// Moves played since each agent's last search, for tree reuse
	var pending [2][]searcher.Segment
	var moveMetrics []metrics.MoveMetric
	var records []record

	log.Debug().Msgf("%s is starting", e.State.Player())

	for turn := 1; turn <= e.MaxTurns; turn++ {
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			break
		}
		player := e.State.CurrentPlayer
		i := seat(player)

		move, visits, searchMetric := e.Agents[i].FindMove(e.State, pending[i])
		pending[i] = nil
		action, ok := move.(game.Action)
		if !ok || action < 0 || int(action) >= game.ActionSize || game.LegalMoves(e.State.Board, player)[action] == 0 {
			log.Warn().Msgf("%s chose illegal move %v, playing %v instead", e.State.Player(), move, legal[0])
			action = legal[0].(game.Action)
		}

		next, err := e.State.Apply(action)
		if err != nil {
			panic(err)
		}

		records = append(records, record{
			player: player,
			board:  e.State.Canonical(),
			policy: toPolicy(visits),
		})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Action:       action,
			SearchMetric: searchMetric,
		})
		segment := searcher.Segment{Move: action, StateHash: next.Hash()}
		for j := range pending {
			pending[j] = append(pending[j], segment)
		}

		log.Debug().Msgf("turn %d: %s played %v", turn, e.State.Player(), action)
		e.State = next
	}

	winner := e.State.Winner()
	if winner == "" && len(e.State.LegalMoves()) > 0 {
		log.Debug().Msgf("stopped after %d turns (no winner yet)", e.MaxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Plies
	gameMetric.Captured = e.State.Captured

	return winner, gameMetric, moveMetrics, examples(records, game.Winner(e.State.Board))
}

// toPolicy converts root visit counts into a distribution over all actions.
func toPolicy(visits map[game.Move]float64) game.Policy {
	var pi game.Policy
	for move, n := range visits {
		if a, ok := move.(game.Action); ok && a >= 0 && int(a) < game.ActionSize {
			pi[a] = n
		}
	}
	if total := floats.Sum(pi[:]); total > 0 {
		floats.Scale(1/total, pi[:])
	}
	return pi
}

// examples labels every record with the outcome and expands it by symmetry.
func examples(records []record, winner game.Stone) []Example {
	out := make([]Example, 0, len(records)*8)
	for _, r := range records {
		value := 0.0
		if winner != game.Empty {
			value = -1
			if r.player == winner {
				value = 1
			}
		}
		for _, s := range game.Symmetries(r.board, r.policy) {
			out = append(out, Example{Board: s.Board, Policy: s.Policy, Value: value})
		}
	}
	return out
}
