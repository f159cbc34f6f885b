package agent

import (
	"math"
	"math/rand"
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher"
	"sort"

	"gonum.org/v1/gonum/floats"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
}

// NewTrainingAgent returns a new agent for self-play during training. Moves are
// sampled proportionally to visits^(1/temperature); a temperature of 0 plays the most
// visited move.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64) Agent {
	return trainingAgent{mcts: mcts, temperature: temperature}
}

func (a trainingAgent) FindMove(state game.State, updates []searcher.Segment) (game.Move, map[game.Move]float64, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	if a.temperature <= 0 || len(policy) == 0 {
		return findMax(policy), policy, metric
	}
	moves, probs := adjustTemperature(policy, a.temperature)
	return sample(moves, probs, rand.Float64()), policy, metric
}

// adjustTemperature returns the moves in a stable order with their
// temperature-adjusted probabilities.
func adjustTemperature(policy map[game.Move]float64, temperature float64) ([]game.Move, []float64) {
	moves := make([]game.Move, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	probs := make([]float64, len(moves))
	for i, move := range moves {
		probs[i] = math.Pow(policy[move], exponent)
	}
	// Normalize
	if sum := floats.Sum(probs); sum > 0 {
		floats.Scale(1/sum, probs)
	} else {
		for i := range probs {
			probs[i] = 1 / float64(len(probs))
		}
	}
	return moves, probs
}

// sample picks the move whose cumulative probability first exceeds sampled.
func sample(moves []game.Move, probs []float64, sampled float64) game.Move {
	cumulative := make([]float64, len(probs))
	floats.CumSum(cumulative, probs)
	for i, c := range cumulative {
		if sampled < c {
			return moves[i]
		}
	}
	return moves[len(moves)-1] // Fallback in case of rounding errors
}
