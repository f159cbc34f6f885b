package engine

import "pente/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner, the board is full or a max number of
	// moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, examples []Example)
}
