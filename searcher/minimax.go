package searcher

import (
	"errors"
	"math"
	"time"

	"shogi/game"
)

// DefaultDepth is the minimax search depth when none is configured.
const DefaultDepth = 4

// Minimax is a fixed-depth negamax search with alpha-beta pruning over a
// static evaluation. Each call is a pure function of (position, depth,
// score); there is no state carried between calls, so one instance may
// serve concurrent searches.
type Minimax struct {
	depth int
	score game.Score
}

type MinimaxOption func(*Minimax)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithScore sets the static evaluation used at the horizon.
func WithScore(score game.Score) MinimaxOption {
	return func(m *Minimax) {
		if score != nil {
			m.score = score
		}
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth: DefaultDepth,
		score: game.EvaluateMaterial,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move and its search value from the
// side-to-move perspective. Among equal-valued moves the first in the
// position's canonical move order wins, so identical inputs always return
// the identical move.
func (m *Minimax) FindMove(p *game.Position) (game.Move, Diagnostics, error) {
	if p.IsTerminal() {
		return nil, Diagnostics{}, errors.New("minimax: no legal moves in terminal position")
	}
	start := time.Now()
	var nodes int64
	value, move := m.search(p, m.depth, math.Inf(-1), math.Inf(1), &nodes)
	return move, Diagnostics{
		Algorithm: AlgorithmMinimax,
		Value:     value,
		Depth:     m.depth,
		Nodes:     nodes,
		Elapsed:   time.Since(start),
	}, nil
}

// search is negamax: the returned value is from the perspective of the
// player to move in p, and each recursion negates the child value.
// Terminal values dominate static scores and prefer faster wins by adding
// the remaining depth.
func (m *Minimax) search(p *game.Position, depth int, alpha, beta float64, nodes *int64) (float64, game.Move) {
	*nodes++
	if p.IsTerminal() {
		switch p.Winner() {
		case game.NoPlayer:
			return 0, nil
		case p.Player():
			return game.WinScore + float64(depth), nil
		default:
			return -(game.WinScore + float64(depth)), nil
		}
	}
	if depth == 0 {
		return m.score(p), nil
	}

	best := math.Inf(-1)
	var bestMove game.Move
	for _, move := range p.LegalMoves() {
		next, err := p.Apply(move)
		if err != nil {
			panic("legal move rejected: " + err.Error())
		}
		value, _ := m.search(next, depth-1, -beta, -alpha, nodes)
		value = -value
		if value > best {
			best = value
			bestMove = move
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestMove
}
