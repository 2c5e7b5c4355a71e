package agent

import (
	"errors"

	"golang.org/x/exp/rand"

	"shogi/game"
	"shogi/searcher"
)

// Random plays uniformly random legal moves. It is the baseline opponent
// for measuring search strength and the fastest way to drive a game to a
// terminal position in tests.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(p *game.Position) (game.Move, searcher.Diagnostics, error) {
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.Diagnostics{}, errors.New("random: no legal moves in terminal position")
	}
	return moves[a.rng.Intn(len(moves))], searcher.Diagnostics{}, nil
}
