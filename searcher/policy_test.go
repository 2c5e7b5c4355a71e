package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestMostVisited(t *testing.T) {
	t.Run("highest count wins", func(t *testing.T) {
		children := []*node{{visits: 3}, {visits: 9}, {visits: 5}}
		require.Same(t, children[1], mostVisited(children), "Visits decide the move")
	})

	t.Run("ties keep the earliest child", func(t *testing.T) {
		children := []*node{{visits: 5}, {visits: 5}}
		require.Same(t, children[0], mostVisited(children),
			"Canonical order breaks ties deterministically")
	})
}

func TestSampleVisits(t *testing.T) {
	t.Run("temperature one follows the counts", func(t *testing.T) {
		children := []*node{{visits: 90}, {visits: 10}}
		rng := rand.New(rand.NewSource(1))
		hits := 0
		for i := 0; i < 1000; i++ {
			if sampleVisits(children, 1, rng) == children[0] {
				hits++
			}
		}
		require.InDelta(t, 900, hits, 60, "Sampling should track the visit ratio")
	})

	t.Run("low temperature sharpens toward the maximum", func(t *testing.T) {
		children := []*node{{visits: 60}, {visits: 40}}
		rng := rand.New(rand.NewSource(2))
		hits := 0
		for i := 0; i < 200; i++ {
			if sampleVisits(children, 0.05, rng) == children[0] {
				hits++
			}
		}
		require.Greater(t, hits, 195, "A cold distribution is nearly deterministic")
	})

	t.Run("unvisited children are never sampled", func(t *testing.T) {
		children := []*node{{visits: 0}, {visits: 1}}
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 100; i++ {
			require.Same(t, children[1], sampleVisits(children, 1, rng),
				"Zero-visit children carry no weight")
		}
	})
}

func TestDirichlet(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	noise := dirichlet(0.3, 8, rng)
	require.Len(t, noise, 8, "One component per child")
	total := 0.0
	for _, x := range noise {
		require.GreaterOrEqual(t, x, 0.0, "Components are probabilities")
		total += x
	}
	require.InDelta(t, 1.0, total, 1e-9, "Dirichlet samples live on the simplex")
}

func TestGamma(t *testing.T) {
	// The sampler should roughly reproduce the Gamma mean for shapes on
	// both sides of one.
	for _, alpha := range []float64{0.3, 1.0, 4.0} {
		rng := rand.New(rand.NewSource(5))
		total := 0.0
		const samples = 20000
		for i := 0; i < samples; i++ {
			x := gamma(alpha, rng)
			require.False(t, math.IsNaN(x), "Samples must be finite")
			require.Greater(t, x, 0.0, "Gamma support is positive")
			total += x
		}
		require.InDelta(t, alpha, total/samples, 0.1, "Mean of Gamma(a, 1) is a")
	}
}
