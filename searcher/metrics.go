package searcher

import (
	"sync/atomic"
	"time"

	"shogi/game"
)

// collector tracks the work a search performs. The simulation counter is
// atomic so parallel workers can claim budget slots without a lock.
type collector struct {
	startTime time.Time
	count     atomic.Int64
}

func newCollector() *collector {
	return &collector{startTime: time.Now()}
}

func (c *collector) addSimulation() {
	c.count.Add(1)
}

func (c *collector) simulations() int {
	return int(c.count.Load())
}

// claim reserves the next simulation slot and returns its ordinal. A
// worker whose ordinal exceeds the budget must release the slot and back
// off without running.
func (c *collector) claim() int {
	return int(c.count.Add(1))
}

func (c *collector) release() {
	c.count.Add(-1)
}

// complete snapshots the finished search into Diagnostics: the root mean
// value, the visit distribution over the action space, and per-move visit
// counts.
func (c *collector) complete(root *node, variant game.Variant) Diagnostics {
	d := Diagnostics{
		Algorithm:   AlgorithmMCTS,
		Elapsed:     time.Since(c.startTime),
		Simulations: c.simulations(),
		Policy:      make([]float64, variant.ActionSpace()),
		Visits:      make(map[game.Move]int, len(root.children)),
	}
	if root.visits > 0 {
		d.Value = root.value / float64(root.visits)
	}
	total := 0
	for _, child := range root.children {
		d.Visits[child.move] = child.visits
		total += child.visits
	}
	if total > 0 {
		for _, child := range root.children {
			d.Policy[variant.EncodeMove(child.move)] = float64(child.visits) / float64(total)
		}
	}
	return d
}
