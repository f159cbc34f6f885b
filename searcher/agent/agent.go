package agent

import (
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher"
)

type Agent interface {
	// FindMove returns the chosen move, the root visit counts it was chosen from and
	// performance metrics (if collected) from the simulation process
	FindMove(state game.State, updates []searcher.Segment) (game.Move, map[game.Move]float64, metrics.SearchMetric)
}
