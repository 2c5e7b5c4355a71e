package agent

import (
	"shogi/game"
	"shogi/searcher"
)

// Search plays moves chosen by a configured search. The same declaration
// drives both minimax and MCTS agents.
type Search struct {
	cfg searcher.Config
}

func NewSearch(cfg searcher.Config) *Search {
	return &Search{cfg: cfg}
}

func (a *Search) FindMove(p *game.Position) (game.Move, searcher.Diagnostics, error) {
	return searcher.ChooseMove(p, a.cfg)
}
