package searcher

import (
	"math"
	"sync"

	"shogi/game"
)

// node is one MCTS tree position. A node stores the edge that led to it
// (move and prior) and its visit statistics. value accumulates from the
// parent's perspective: the average value/visits is the Q the parent reads
// when selecting among its children. Virtual losses bias concurrent
// simulations away from paths already being explored and are reversed on
// backup.
type node struct {
	mu sync.Mutex

	move  game.Move
	prior float64

	visits int
	value  float64
	vloss  int

	expanded bool
	children []*node
}

// q returns the node's mean value from the parent's perspective, with any
// outstanding virtual losses counted at the worst value. Unvisited nodes
// read as zero.
func (n *node) q() float64 {
	total := n.visits + n.vloss
	if total == 0 {
		return 0
	}
	return (n.value + float64(n.vloss)*Loss) / float64(total)
}

// selectChild returns the child maximizing Q + c_puct * P * sqrt(N) /
// (1 + n). Ties keep the earliest child, which follows the canonical move
// order. The caller must hold n.mu.
func (n *node) selectChild(cpuct float64) *node {
	sqrtParent := math.Sqrt(float64(n.visits))
	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		child.mu.Lock()
		score := child.q() + cpuct*child.prior*sqrtParent/float64(1+child.visits+child.vloss)
		child.mu.Unlock()
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// record adds one completed simulation outcome, reversing the virtual
// loss taken during selection.
func (n *node) record(value float64) {
	n.mu.Lock()
	n.visits++
	n.value += value
	n.vloss--
	n.mu.Unlock()
}

// addLoss marks the node as being descended by an in-flight simulation.
func (n *node) addLoss() {
	n.mu.Lock()
	n.vloss++
	n.mu.Unlock()
}

// dropLoss reverses a virtual loss without recording a visit, used when a
// simulation aborts on an evaluator contract violation.
func (n *node) dropLoss() {
	n.mu.Lock()
	n.vloss--
	n.mu.Unlock()
}
