package agent

import (
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State, updates []searcher.Segment) (game.Move, map[game.Move]float64, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	return findMax(policy), policy, metric
}

// findMax returns the most visited move, nil for an empty policy. Ties go to the move
// with the lowest String() so that results do not depend on map order.
func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit || (visit == maxVisit && move.String() < maxMove.String()) {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
