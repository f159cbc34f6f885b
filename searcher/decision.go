package searcher

import (
	"pente/game"
	"sync"

	"golang.org/x/exp/rand"
)

// decision is a node of the search tree. Its statistics are kept from the
// perspective of player, the player who made the move leading to it, so that a parent
// picks the child maximizing its own rewards.
type decision struct {
	sync.Mutex
	parent     *decision
	player     string
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, player string, state game.State) *decision {
	moves := state.LegalMoves()
	unexplored := make([]game.Move, len(moves))
	copy(unexplored, moves)
	rand.Shuffle(len(unexplored), func(i, j int) {
		unexplored[i], unexplored[j] = unexplored[j], unexplored[i]
	})

	return &decision{
		parent:     parent,
		player:     player,
		hash:       state.Hash(),
		unexplored: unexplored,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level from d. It expands an unexplored move if there is
// one, otherwise selects the child with the highest UCT value. Either child receives
// a virtual loss. A terminal node returns itself and the unchanged state.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.expand(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) expand(state game.State) (*decision, game.State) {
	last := len(d.unexplored) - 1
	move := d.unexplored[last]
	d.unexplored = d.unexplored[:last]

	mover := state.Player()
	childState := state.Play(move)
	child := newDecision(d, mover, childState)
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	// Concurrent workers may fully expand a node before any of them backs up
	visits := max(d.visits, 1)
	return newUCT(CSquared, visits).best(d.children)
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) stats() (rewards float64, visits float64) {
	d.Lock()
	defer d.Unlock()

	return d.rewards, d.visits
}

// Backup records the outcome of a simulation where player reached score, and
// returns the parent to continue with.
func (d *decision) Backup(player string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.player)
	d.visits++

	return d.parent
}

// Policy returns the visit count of each explored move.
func (d *decision) Policy() map[game.Move]float64 {
	d.Lock()
	children := make([]*decision, len(d.children))
	copy(children, d.children)
	moves := make([]game.Move, len(d.explored))
	copy(moves, d.explored)
	d.Unlock()

	policy := make(map[game.Move]float64, len(children))
	for i, child := range children {
		_, visits := child.stats()
		policy[moves[i]] = visits
	}
	return policy
}

// child returns the child reached by move, or nil if move was not expanded.
func (d *decision) child(move game.Move) *decision {
	d.Lock()
	defer d.Unlock()

	for i, m := range d.explored {
		if m == move {
			return d.children[i]
		}
	}
	return nil
}
