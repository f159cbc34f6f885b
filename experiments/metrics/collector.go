package metrics

import (
	"pente/game"
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one call to Simulate.
type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Cutoff     int
	Evaluate   game.Evaluate
	// Rollouts that reached five in a row or a full board
	DecisiveRollouts int
	// Rollouts stopped at the cutoff and scored by Evaluate
	EvaluatedRollouts int
	RolloutPlies      int // Random stones placed over all rollouts
	IsTreeReset       bool
}

// MeanRolloutPlies is the average number of random stones per rollout.
func (m SearchMetric) MeanRolloutPlies() float64 {
	rollouts := m.DecisiveRollouts + m.EvaluatedRollouts
	if rollouts == 0 {
		return 0
	}
	return float64(m.RolloutPlies) / float64(rollouts)
}

type MoveMetric struct {
	Step   int
	Player game.Stone
	Action game.Action
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Stone
	Winner         string // "" on a draw or when the turn limit was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captured       [2]int // Stones captured by Player1 and Player2
}

// Collector is shared by all search goroutines of one MCTS.
type Collector interface {
	Start(goroutines, cutoff int, evaluate game.Evaluate)
	SetTreeReset(reset bool)
	AddEpisode()
	AddRollout(plies int, decisive bool)
	Complete() SearchMetric
}

type searchCollector struct {
	goroutines int
	cutoff     int
	evaluate   game.Evaluate
	start      time.Time

	episodes  atomic.Int64
	decisive  atomic.Int64
	evaluated atomic.Int64
	plies     atomic.Int64
	treeReset atomic.Bool
}

func NewCollector() Collector {
	return &searchCollector{}
}

// Start resets the counters for a new search.
func (c *searchCollector) Start(goroutines, cutoff int, evaluate game.Evaluate) {
	c.start = time.Now()
	c.goroutines, c.cutoff, c.evaluate = goroutines, cutoff, evaluate
	c.episodes.Store(0)
	c.decisive.Store(0)
	c.evaluated.Store(0)
	c.plies.Store(0)
}

func (c *searchCollector) SetTreeReset(reset bool) {
	c.treeReset.Store(reset)
}

func (c *searchCollector) AddEpisode() {
	c.episodes.Add(1)
}

func (c *searchCollector) AddRollout(plies int, decisive bool) {
	c.plies.Add(int64(plies))
	if decisive {
		c.decisive.Add(1)
	} else {
		c.evaluated.Add(1)
	}
}

func (c *searchCollector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:        c.goroutines,
		Duration:          time.Since(c.start),
		Episodes:          int(c.episodes.Load()),
		Cutoff:            c.cutoff,
		Evaluate:          c.evaluate,
		DecisiveRollouts:  int(c.decisive.Load()),
		EvaluatedRollouts: int(c.evaluated.Load()),
		RolloutPlies:      int(c.plies.Load()),
		IsTreeReset:       c.treeReset.Load(),
	}
}

// noopCollector is used when metrics are off.
type noopCollector struct{}

func NewDummyCollector() Collector {
	return noopCollector{}
}

func (noopCollector) Start(int, int, game.Evaluate) {}
func (noopCollector) SetTreeReset(bool)             {}
func (noopCollector) AddEpisode()                   {}
func (noopCollector) AddRollout(int, bool)          {}
func (noopCollector) Complete() SearchMetric        { return SearchMetric{} }
