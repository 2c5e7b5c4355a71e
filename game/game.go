package game

// Move is one action by the side to move: moving a piece already on the
// board (optionally promoting it) or dropping a piece held in hand onto an
// empty square. Both concrete move types are comparable value types so they
// can key maps in the search layer.
type Move interface {
	// Destination returns the square the move ends on.
	Destination() Square
	// IsDrop reports whether the move places a piece from hand.
	IsDrop() bool
}

// Evaluate scores a position for guided search: a prior probability for
// every index in the variant's action space plus a value estimate in
// [-1, 1], both from the side-to-move perspective. Implementations are
// typically backed by a trained network; the search core only sees this
// contract.
type Evaluate func(*Position) (prior []float64, value float64)

// Score is a static evaluation of a position from the side-to-move
// perspective; positive means the player to move is better off.
type Score func(*Position) float64
