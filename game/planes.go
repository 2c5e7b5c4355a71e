package game

// Feature planes: the flattened tensor representation a network evaluator
// consumes, always from the side-to-move perspective. Channel layout, with
// K piece kinds and D droppable kinds:
//
//	[0, K)        own pieces, one one-hot board per kind
//	[K, 2K)       opponent pieces
//	[2K, 2K+D)    own hand counts, broadcast over the board
//	(full only)   opponent hand counts, D more channels
//	last channel  all ones when Sente is to move
//
// Animal: (2*5+3+1) x 12 = 168 values. Full: (2*14+2*7+1) x 81 = 3483.

// NumPlanes returns the channel count of the variant's feature planes.
func (v Variant) NumPlanes() int {
	s := v.spec()
	kinds := len(s.values)
	planes := 2*kinds + len(s.droppable) + 1
	if s.bothHandPlanes {
		planes += len(s.droppable)
	}
	return planes
}

// PlaneSize returns the length of one plane; the full feature vector is
// NumPlanes times this.
func (v Variant) PlaneSize() int {
	return v.NumSquares()
}

// FeaturePlanes flattens the position into the evaluator input vector.
func (p *Position) FeaturePlanes() []float64 {
	spec := p.variant.spec()
	n := p.variant.NumSquares()
	kinds := len(spec.values)
	out := make([]float64, p.variant.NumPlanes()*n)

	for sq, pc := range p.squares {
		if pc.IsEmpty() {
			continue
		}
		// Kind values start at 1; channel indexes at 0.
		channel := int(pc.Type) - 1
		if pc.Owner != p.player {
			channel += kinds
		}
		out[channel*n+sq] = 1
	}

	channel := 2 * kinds
	for i, pt := range spec.droppable {
		fill(out, (channel+i)*n, n, float64(p.hands[p.player][pt]))
	}
	channel += len(spec.droppable)
	if spec.bothHandPlanes {
		for i, pt := range spec.droppable {
			fill(out, (channel+i)*n, n, float64(p.hands[p.player.Opponent()][pt]))
		}
		channel += len(spec.droppable)
	}
	if p.player == Sente {
		fill(out, channel*n, n, 1)
	}
	return out
}

func fill(out []float64, offset, n int, value float64) {
	if value == 0 {
		return
	}
	for i := 0; i < n; i++ {
		out[offset+i] = value
	}
}
