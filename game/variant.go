package game

import "fmt"

// Variant selects a rule set. All board geometry, movement tables,
// promotion rules and drop restrictions hang off the variant so that the
// rule engine and the move codec stay variant-agnostic.
type Variant int8

const (
	// Animal is the 3x4 teaching variant (dobutsu shogi): five piece
	// kinds, single-rank promotion zone, escape-to-last-rank win rule.
	Animal Variant = iota
	// Full is the standard 9x9 game: fourteen piece kinds, three-rank
	// promotion zone, nifu and drop-mate prohibitions.
	Full
)

// Square is a board coordinate as a row-major linear index.
type Square int

// delta is one movement offset, defined from the Sente perspective where
// "forward" decreases the row. Gote mirrors the row component.
type delta struct {
	dr, dc int
}

// variantSpec bundles the constant tables of one rule set.
type variantSpec struct {
	name string
	rows int
	cols int

	// leader is the piece whose checkmate or capture ends the game.
	leader PieceType

	// steps, jumps and slides describe movement. A piece may appear in
	// more than one table (horse and dragon combine slides with steps).
	// Jumps ignore intervening pieces; slides repeat until blocked.
	steps  map[PieceType][]delta
	jumps  map[PieceType][]delta
	slides map[PieceType][]delta

	// promotions maps base kinds to their promoted counterparts;
	// demotions is the inverse, applied when a promoted piece is
	// captured into hand.
	promotions map[PieceType]PieceType
	demotions  map[PieceType]PieceType

	// droppable lists the hand kinds in codec order.
	droppable []PieceType

	// noDropDepth gives, per kind, the number of far ranks where the
	// kind may never be dropped because it could not move afterwards.
	noDropDepth map[PieceType]int

	// forcedPromotionDepth gives, per kind, the number of far ranks
	// where a board move must promote for the same reason.
	forcedPromotionDepth map[PieceType]int

	// pawnKind is the kind subject to the nifu and drop-mate
	// prohibitions; NoPieceType when the variant has neither rule.
	pawnKind PieceType

	// promotionZoneDepth is the depth of the promotion zone in ranks,
	// counted from the opponent's edge.
	promotionZoneDepth int

	// tryRule enables the escape-to-last-rank win condition.
	tryRule bool

	// maxPly is the ply count at which an unfinished game is drawn.
	maxPly int

	// values are the material weights used by static evaluation.
	values map[PieceType]float64

	// bothHandPlanes selects whether feature planes include the
	// opponent's hand counts in addition to the mover's.
	bothHandPlanes bool

	setup func() []Piece
}

var variantSpecs = [...]*variantSpec{
	Animal: &animalSpec,
	Full:   &fullSpec,
}

func (v Variant) spec() *variantSpec {
	if int(v) < 0 || int(v) >= len(variantSpecs) {
		panic(fmt.Sprintf("unknown variant %d", v))
	}
	return variantSpecs[v]
}

// Rows returns the number of board rows.
func (v Variant) Rows() int { return v.spec().rows }

// Cols returns the number of board columns.
func (v Variant) Cols() int { return v.spec().cols }

// NumSquares returns the board size in squares.
func (v Variant) NumSquares() int {
	s := v.spec()
	return s.rows * s.cols
}

// Leader returns the king-equivalent piece kind.
func (v Variant) Leader() PieceType { return v.spec().leader }

// Droppable returns the hand piece kinds in codec order. The returned
// slice must not be modified.
func (v Variant) Droppable() []PieceType { return v.spec().droppable }

// MaxPly returns the ply threshold beyond which the game is drawn.
func (v Variant) MaxPly() int { return v.spec().maxPly }

// SquareAt returns the linear index of (row, col).
func (v Variant) SquareAt(row, col int) Square {
	return Square(row*v.spec().cols + col)
}

// RowCol splits a linear index into its coordinates.
func (v Variant) RowCol(sq Square) (row, col int) {
	cols := v.spec().cols
	return int(sq) / cols, int(sq) % cols
}

// OnBoard reports whether (row, col) is inside the board.
func (v Variant) OnBoard(row, col int) bool {
	s := v.spec()
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// PromotesTo returns the promoted counterpart of a kind, or NoPieceType
// when the kind cannot promote.
func (v Variant) PromotesTo(pt PieceType) PieceType {
	return v.spec().promotions[pt]
}

// BaseKind returns the unpromoted form of a kind: captured pieces enter
// the capturer's hand as this kind.
func (v Variant) BaseKind(pt PieceType) PieceType {
	if base, ok := v.spec().demotions[pt]; ok {
		return base
	}
	return pt
}

func (v Variant) String() string { return v.spec().name }

// ParseVariant maps a configuration name to a Variant.
func ParseVariant(name string) (Variant, error) {
	for variant, s := range variantSpecs {
		if s.name == name {
			return Variant(variant), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

// inPromotionZone reports whether a row lies in pl's promotion zone (the
// ranks nearest the opponent's edge).
func (s *variantSpec) inPromotionZone(pl Player, row int) bool {
	if pl == Sente {
		return row < s.promotionZoneDepth
	}
	return row >= s.rows-s.promotionZoneDepth
}

// depthFromFarEdge returns how far a row is from pl's promotion edge:
// 0 for the last rank, 1 for the rank before it, and so on.
func (s *variantSpec) depthFromFarEdge(pl Player, row int) int {
	if pl == Sente {
		return row
	}
	return s.rows - 1 - row
}

// backRank is the opponent's edge row for pl, the target of the try rule.
func (s *variantSpec) backRank(pl Player) int {
	if pl == Sente {
		return 0
	}
	return s.rows - 1
}
