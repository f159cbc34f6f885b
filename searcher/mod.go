package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Use rewards to estimate the chance of winning
const Win = 1.0
const Loss = 1 - Win
const Draw = (Win + Loss) / 2

// MaxCutoff plays rollouts until the game is over
const MaxCutoff = math.MaxInt

// computeReward converts a score in [-1, 1] from player's perspective into a reward in
// [Loss, Win] for mover. An empty player means nobody won: a draw for everyone.
func computeReward(player string, score float64, mover string) float64 {
	if player == "" {
		return Draw
	}
	if mover == player {
		return Loss + (Win-Loss)*(1+score)/2
	}
	return Loss + (Win-Loss)*(1-score)/2
}
