package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shogi/game"
)

func TestNodeQ(t *testing.T) {
	t.Run("unvisited node is neutral", func(t *testing.T) {
		n := &node{}
		require.Zero(t, n.q(), "No evidence, no value")
	})

	t.Run("mean of recorded values", func(t *testing.T) {
		n := &node{}
		n.record(1)
		n.record(0)
		require.Equal(t, 0.5, n.q(), "Q is the running mean")
	})

	t.Run("virtual loss discourages in-flight paths", func(t *testing.T) {
		n := &node{visits: 2, value: 2}
		withoutLoss := n.q()
		n.addLoss()
		require.Less(t, n.q(), withoutLoss, "A pending simulation counts as a loss")
		n.dropLoss()
		require.Equal(t, withoutLoss, n.q(), "Reverting the loss restores the value")
	})
}

func TestSelectChild(t *testing.T) {
	t.Run("prefers the higher value at equal priors", func(t *testing.T) {
		better := &node{move: game.BoardMove{From: 1, To: 2}, prior: 0.5, visits: 1, value: 1}
		worse := &node{move: game.BoardMove{From: 3, To: 4}, prior: 0.5, visits: 1, value: -1}
		parent := &node{visits: 2, expanded: true, children: []*node{worse, better}}
		require.Same(t, better, parent.selectChild(DefaultCPuct),
			"Selection should exploit the better child")
	})

	t.Run("prefers the higher prior among unvisited children", func(t *testing.T) {
		likely := &node{move: game.BoardMove{From: 1, To: 2}, prior: 0.9}
		unlikely := &node{move: game.BoardMove{From: 3, To: 4}, prior: 0.1}
		parent := &node{visits: 1, expanded: true, children: []*node{unlikely, likely}}
		require.Same(t, likely, parent.selectChild(DefaultCPuct),
			"The prior steers exploration before any visits")
	})

	t.Run("virtual loss diverts concurrent selection", func(t *testing.T) {
		first := &node{move: game.BoardMove{From: 1, To: 2}, prior: 0.5}
		second := &node{move: game.BoardMove{From: 3, To: 4}, prior: 0.5}
		parent := &node{visits: 1, expanded: true, children: []*node{first, second}}
		require.Same(t, first, parent.selectChild(DefaultCPuct),
			"Ties resolve to the earliest child")
		first.addLoss()
		require.Same(t, second, parent.selectChild(DefaultCPuct),
			"An in-flight child should repel the next worker")
	})
}

func TestNodeRecord(t *testing.T) {
	n := &node{}
	n.addLoss()
	n.record(1)
	require.Equal(t, 1, n.visits, "Record counts the visit")
	require.Equal(t, 1.0, n.value, "Record accumulates the value")
	require.Zero(t, n.vloss, "Record reverts the virtual loss")
}
