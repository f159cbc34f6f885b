// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 400

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 20

// MAX_TURNS caps a game; a 9x9 board is full after 81 moves.
const MAX_TURNS = 81

// GAMES defines the number of self-play games per run.
const GAMES = 10

// TEMPERATURE defines the sampling temperature of training agents.
const TEMPERATURE = 1.0

// DURATION is the per-move search budget when set instead of EPISODES.
const DURATION = 0 * time.Millisecond

// OUT_DIR is where experiment records are written.
const OUT_DIR = "experiments"
