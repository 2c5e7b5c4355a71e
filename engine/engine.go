package engine

import (
	"time"

	"shogi/game"
	"shogi/searcher"
)

// MaxMoves caps a match regardless of the variant's own ply limit, so a
// misbehaving agent pair can never loop forever.
const MaxMoves = 10000

// MoveRecord captures one played move and what the searching agent
// reported about it.
type MoveRecord struct {
	Ply         int
	Player      game.Player
	Move        game.Move
	Diagnostics searcher.Diagnostics
}

// Result summarizes a finished match.
type Result struct {
	MatchID  string
	Winner   game.Player
	Plies    int
	Records  []MoveRecord
	Duration time.Duration
}
