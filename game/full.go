package game

// Movement tables and the initial setup for the full 9x9 game.

// goldSteps is shared by gold and every gold-moving promoted kind.
var goldSteps = []delta{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, 0},
}

var fullSpec = variantSpec{
	name:   "full",
	rows:   9,
	cols:   9,
	leader: King,
	steps: map[PieceType][]delta{
		Pawn: {{-1, 0}},
		Silver: {
			{-1, -1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 1},
		},
		Gold: goldSteps,
		King: {
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, -1}, {1, 0}, {1, 1},
		},
		PromotedPawn:   goldSteps,
		PromotedLance:  goldSteps,
		PromotedKnight: goldSteps,
		PromotedSilver: goldSteps,
		// The promoted sliders keep their slides and gain the
		// orthogonal (horse) or diagonal (dragon) single steps.
		Horse:  {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
		Dragon: {{-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
	},
	jumps: map[PieceType][]delta{
		Knight: {{-2, -1}, {-2, 1}},
	},
	slides: map[PieceType][]delta{
		Lance:  {{-1, 0}},
		Bishop: {{-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
		Rook:   {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
		Horse:  {{-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
		Dragon: {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	},
	promotions: map[PieceType]PieceType{
		Pawn:   PromotedPawn,
		Lance:  PromotedLance,
		Knight: PromotedKnight,
		Silver: PromotedSilver,
		Bishop: Horse,
		Rook:   Dragon,
	},
	demotions: map[PieceType]PieceType{
		PromotedPawn:   Pawn,
		PromotedLance:  Lance,
		PromotedKnight: Knight,
		PromotedSilver: Silver,
		Horse:          Bishop,
		Dragon:         Rook,
	},
	droppable: []PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook},
	noDropDepth: map[PieceType]int{
		Pawn:   1,
		Lance:  1,
		Knight: 2,
	},
	forcedPromotionDepth: map[PieceType]int{
		Pawn:   1,
		Lance:  1,
		Knight: 2,
	},
	pawnKind:           Pawn,
	promotionZoneDepth: 3,
	tryRule:            false,
	maxPly:             512,
	values: map[PieceType]float64{
		Pawn:           1,
		Lance:          3,
		Knight:         3,
		Silver:         5,
		Gold:           6,
		Bishop:         8,
		Rook:           10,
		King:           100,
		PromotedPawn:   6,
		PromotedLance:  6,
		PromotedKnight: 6,
		PromotedSilver: 6,
		Horse:          10,
		Dragon:         12,
	},
	bothHandPlanes: true,
	setup:          fullSetup,
}

// fullSetup returns the standard even-game placement. Row 0 is the gote
// back rank, row 8 the sente back rank; the bishop sits on the left file
// and the rook on the right from each side's own perspective.
func fullSetup() []Piece {
	squares := make([]Piece, 81)
	backRank := []PieceType{
		Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance,
	}
	for c, pt := range backRank {
		squares[c] = Piece{pt, Gote}
		squares[8*9+c] = Piece{pt, Sente}
	}
	squares[1*9+1] = Piece{Rook, Gote}
	squares[1*9+7] = Piece{Bishop, Gote}
	squares[7*9+1] = Piece{Bishop, Sente}
	squares[7*9+7] = Piece{Rook, Sente}
	for c := 0; c < 9; c++ {
		squares[2*9+c] = Piece{Pawn, Gote}
		squares[6*9+c] = Piece{Pawn, Sente}
	}
	return squares
}
