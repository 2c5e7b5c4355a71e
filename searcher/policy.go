package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// mostVisited returns the child with the highest visit count, taking the
// earliest child on ties.
func mostVisited(children []*node) *node {
	best := children[0]
	for _, child := range children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best
}

// sampleVisits draws a child with probability proportional to
// visits^(1/temperature). Children with zero visits are never selected.
func sampleVisits(children []*node, temperature float64, rng *rand.Rand) *node {
	weights := make([]float64, len(children))
	total := 0.0
	for i, child := range children {
		if child.visits > 0 {
			weights[i] = math.Pow(float64(child.visits), 1/temperature)
		}
		total += weights[i]
	}
	if total == 0 {
		return mostVisited(children)
	}
	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return children[i]
		}
	}
	return children[len(children)-1]
}

// mixNoise blends Dirichlet(alpha) noise into the root priors:
// prior = (1-epsilon)*prior + epsilon*noise. Only the root is perturbed,
// and only once, right after the root expands.
func mixNoise(root *node, alpha, epsilon float64, rng *rand.Rand) {
	root.mu.Lock()
	defer root.mu.Unlock()
	noise := dirichlet(alpha, len(root.children), rng)
	for i, child := range root.children {
		child.prior = (1-epsilon)*child.prior + epsilon*noise[i]
	}
}

// dirichlet samples a symmetric Dirichlet(alpha) distribution by
// normalizing independent Gamma(alpha, 1) draws.
func dirichlet(alpha float64, n int, rng *rand.Rand) []float64 {
	samples := make([]float64, n)
	total := 0.0
	for i := range samples {
		samples[i] = gamma(alpha, rng)
		total += samples[i]
	}
	if total == 0 {
		for i := range samples {
			samples[i] = 1 / float64(n)
		}
		return samples
	}
	for i := range samples {
		samples[i] /= total
	}
	return samples
}

// gamma draws from Gamma(alpha, 1) with the Marsaglia-Tsang squeeze
// method, boosting shapes below one through the standard power-of-uniform
// identity.
func gamma(alpha float64, rng *rand.Rand) float64 {
	if alpha < 1 {
		return gamma(alpha+1, rng) * math.Pow(rng.Float64(), 1/alpha)
	}
	d := alpha - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
