package game

// Move index codec. Every representable move maps to a dense integer used
// as the evaluator's action space, laid out per variant with N squares and
// D droppable kinds:
//
//	[0, N*N)        board moves without promotion, from*N + to
//	[N*N, 2*N*N)    board moves with promotion,    N*N + from*N + to
//	[2*N*N, +D*N)   drops, 2*N*N + kindRank*N + to
//
// The layout is a stable contract with trained evaluators and must not
// change. Encode and decode are mutual inverses over move shapes; an index
// in range may still decode to a move that is illegal in any given
// position, so legality is always re-checked against the position.

// ActionSpace returns the size of the variant's move index space.
func (v Variant) ActionSpace() int {
	n := v.NumSquares()
	return 2*n*n + len(v.spec().droppable)*n
}

// EncodeMove maps a move to its index in the variant's action space.
// Encoding a drop of a kind the variant cannot hold in hand panics: such a
// move cannot exist and indicates a corrupted caller.
func (v Variant) EncodeMove(m Move) int {
	n := v.NumSquares()
	switch mv := m.(type) {
	case BoardMove:
		idx := int(mv.From)*n + int(mv.To)
		if mv.Promote {
			idx += n * n
		}
		return idx
	case DropMove:
		rank := v.dropRank(mv.Piece)
		if rank < 0 {
			panic("encode of non-droppable kind " + mv.String())
		}
		return 2*n*n + rank*n + int(mv.To)
	default:
		panic("unknown move type")
	}
}

// DecodeMove maps an index back to its move shape, failing with
// InvalidMoveIndexError when the index is outside the action space.
func (v Variant) DecodeMove(index int) (Move, error) {
	n := v.NumSquares()
	if index < 0 || index >= v.ActionSpace() {
		return nil, &InvalidMoveIndexError{Index: index, Variant: v}
	}
	if index < 2*n*n {
		promote := index >= n*n
		if promote {
			index -= n * n
		}
		return BoardMove{
			From:    Square(index / n),
			To:      Square(index % n),
			Promote: promote,
		}, nil
	}
	index -= 2 * n * n
	return DropMove{
		Piece: v.spec().droppable[index/n],
		To:    Square(index % n),
	}, nil
}

// dropRank returns the codec rank of a droppable kind, or -1.
func (v Variant) dropRank(pt PieceType) int {
	for i, d := range v.spec().droppable {
		if d == pt {
			return i
		}
	}
	return -1
}
