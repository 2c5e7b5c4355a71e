package agent

import (
	"math"

	deep "github.com/patrikeh/go-deep"

	"shogi/game"
)

// Neural wraps a feed-forward network as a position evaluator. The
// network maps a position's feature planes to the variant's action space
// plus one value output; the raw outputs are shaped into a softmax prior
// and a tanh value so they always satisfy the evaluator contract.
type Neural struct {
	variant game.Variant
	network *deep.Neural
}

// NewNeural builds an untrained evaluator network for the variant with
// the given hidden layer sizes.
func NewNeural(variant game.Variant, hidden ...int) *Neural {
	inputs := variant.NumPlanes() * variant.PlaneSize()
	layout := append(append([]int{}, hidden...), variant.ActionSpace()+1)
	network := deep.NewNeural(&deep.Config{
		Inputs:     inputs,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0, 0.1),
		Bias:       true,
	})
	return &Neural{variant: variant, network: network}
}

// Evaluate satisfies game.Evaluate.
func (n *Neural) Evaluate(p *game.Position) ([]float64, float64) {
	outputs := n.network.Predict(p.FeaturePlanes())
	actions := n.variant.ActionSpace()

	// Softmax with the usual max shift for numerical stability.
	max := outputs[0]
	for _, out := range outputs[1:actions] {
		if out > max {
			max = out
		}
	}
	prior := make([]float64, actions)
	total := 0.0
	for i := 0; i < actions; i++ {
		prior[i] = math.Exp(outputs[i] - max)
		total += prior[i]
	}
	for i := range prior {
		prior[i] /= total
	}
	return prior, math.Tanh(outputs[actions])
}
