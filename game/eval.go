package game

// WinScore is the terminal score magnitude used by static evaluation;
// material differences never reach it.
const WinScore = 1000.0

// EvaluateMaterial tallies piece values on the board and in both hands to
// produce a score from the side-to-move perspective. Terminal positions
// score the full win/draw/loss value regardless of material.
func EvaluateMaterial(p *Position) float64 {
	if p.terminal {
		switch p.winner {
		case p.player:
			return WinScore
		case NoPlayer:
			return 0
		default:
			return -WinScore
		}
	}

	values := p.variant.spec().values
	score := 0.0
	for _, pc := range p.squares {
		if pc.IsEmpty() {
			continue
		}
		if pc.Owner == p.player {
			score += values[pc.Type]
		} else {
			score -= values[pc.Type]
		}
	}
	for pl := range p.hands {
		for pt, count := range p.hands[pl] {
			v := values[PieceType(pt)] * float64(count)
			if Player(pl) == p.player {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// EvaluateUniform is the trivial evaluator stub: a uniform prior over the
// variant's whole action space and a neutral value. It makes the guided
// search runnable and testable without any trained network.
func EvaluateUniform(v Variant) Evaluate {
	size := v.ActionSpace()
	return func(*Position) ([]float64, float64) {
		prior := make([]float64, size)
		for i := range prior {
			prior[i] = 1.0 / float64(size)
		}
		return prior, 0
	}
}
