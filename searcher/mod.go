package searcher

import (
	"time"

	"shogi/game"
)

// Values are always from the perspective of the player to move at the
// position being scored.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// Diagnostics expose what a search saw: the chosen move's value, the work
// done, and (for MCTS) the root visit distribution. Presentation layers
// consume them; play correctness never depends on them.
type Diagnostics struct {
	Algorithm   Algorithm
	Value       float64
	Elapsed     time.Duration
	Depth       int   // minimax
	Nodes       int64 // minimax positions visited
	Simulations int   // mcts
	// Policy is the visit-count distribution over the variant's action
	// space; nil for minimax.
	Policy []float64
	// Visits maps each root move to its visit count; nil for minimax.
	Visits map[game.Move]int
}

// terminalValue scores a finished game for the player to move in p.
func terminalValue(p *game.Position) float64 {
	switch p.Winner() {
	case game.NoPlayer:
		return Draw
	case p.Player():
		return Win
	default:
		return Loss
	}
}
