package agent

import (
	"shogi/game"
	"shogi/searcher"
)

// Agent selects one move per call. Implementations must return a move
// that is legal in p; callers are entitled to apply it unchecked.
type Agent interface {
	FindMove(p *game.Position) (game.Move, searcher.Diagnostics, error)
}
