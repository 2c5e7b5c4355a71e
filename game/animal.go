package game

// Movement tables and the initial setup for the 3x4 animal variant.
// Deltas are from the Sente perspective; forward is dr = -1.

var animalSpec = variantSpec{
	name:   "animal",
	rows:   4,
	cols:   3,
	leader: Lion,
	steps: map[PieceType][]delta{
		Chick: {{-1, 0}},
		Giraffe: {
			{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		},
		Elephant: {
			{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
		},
		Lion: {
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, -1}, {1, 0}, {1, 1},
		},
		Hen: {
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, 0},
		},
	},
	promotions: map[PieceType]PieceType{
		Chick: Hen,
	},
	demotions: map[PieceType]PieceType{
		Hen: Chick,
	},
	// A captured lion never reaches a hand: the game ends first.
	droppable: []PieceType{Chick, Giraffe, Elephant},
	// Any empty square is a valid drop target, including the last rank:
	// a dropped chick there simply never moves again.
	noDropDepth: map[PieceType]int{},
	// A chick reaching the last rank must become a hen.
	forcedPromotionDepth: map[PieceType]int{
		Chick: 1,
	},
	pawnKind:           NoPieceType,
	promotionZoneDepth: 1,
	tryRule:            true,
	maxPly:             200,
	values: map[PieceType]float64{
		Chick:    1,
		Giraffe:  3,
		Elephant: 3,
		Lion:     100,
		Hen:      5,
	},
	bothHandPlanes: false,
	setup:          animalSetup,
}

// animalSetup returns the standard starting placement:
//
//	row 0: giraffe lion elephant (gote)
//	row 1: .      chick .       (gote)
//	row 2: .      chick .       (sente)
//	row 3: elephant lion giraffe (sente)
func animalSetup() []Piece {
	squares := make([]Piece, 12)
	squares[0] = Piece{Giraffe, Gote}
	squares[1] = Piece{Lion, Gote}
	squares[2] = Piece{Elephant, Gote}
	squares[4] = Piece{Chick, Gote}
	squares[7] = Piece{Chick, Sente}
	squares[9] = Piece{Elephant, Sente}
	squares[10] = Piece{Lion, Sente}
	squares[11] = Piece{Giraffe, Sente}
	return squares
}
