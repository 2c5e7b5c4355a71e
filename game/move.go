package game

import "fmt"

// BoardMove moves the piece standing on From to To. Promote converts the
// piece to its promoted counterpart on arrival; it is only legal for
// promotable kinds on moves touching the promotion zone.
type BoardMove struct {
	From    Square
	To      Square
	Promote bool
}

// Destination implements Move.
func (m BoardMove) Destination() Square { return m.To }

// IsDrop implements Move.
func (m BoardMove) IsDrop() bool { return false }

func (m BoardMove) String() string {
	if m.Promote {
		return fmt.Sprintf("%d-%d+", m.From, m.To)
	}
	return fmt.Sprintf("%d-%d", m.From, m.To)
}

// DropMove places a piece of kind Piece from the mover's hand onto the
// empty square To. Drops never promote.
type DropMove struct {
	Piece PieceType
	To    Square
}

// Destination implements Move.
func (m DropMove) Destination() Square { return m.To }

// IsDrop implements Move.
func (m DropMove) IsDrop() bool { return true }

func (m DropMove) String() string {
	return fmt.Sprintf("%d*%d", m.Piece, m.To)
}
