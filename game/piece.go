package game

// PieceType enumerates piece kinds. The numeric values overlap between the
// two variants; a PieceType is only meaningful together with its Variant.
// Zero is reserved for "no piece" so that the zero Piece marks an empty
// square.
type PieceType int8

// NoPieceType marks an empty square or an absent piece.
const NoPieceType PieceType = 0

// Animal variant (3x4) piece kinds.
const (
	Chick PieceType = iota + 1
	Giraffe
	Elephant
	Lion
	Hen // promoted chick
)

// Full variant (9x9) piece kinds. The first seven are the droppable base
// kinds, followed by the king and the six promoted counterparts.
const (
	Pawn PieceType = iota + 1
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	PromotedPawn
	PromotedLance
	PromotedKnight
	PromotedSilver
	Horse  // promoted bishop
	Dragon // promoted rook
)

// pieceKinds is the size of the PieceType value space across variants,
// including NoPieceType. Hand counts are stored in arrays of this length.
const pieceKinds = 15

// Piece is one piece on the board. The zero Piece is an empty square.
type Piece struct {
	Type  PieceType
	Owner Player
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}
