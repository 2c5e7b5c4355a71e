package game

// Apply plays a move and returns the resulting position. The move must be
// a member of the position's legal-move set; anything else, including any
// move on a terminal position, fails with IllegalMoveError.
func (p *Position) Apply(m Move) (*Position, error) {
	if p.terminal || !p.IsLegal(m) {
		if p.terminal {
			return nil, &IllegalMoveError{}
		}
		return nil, &IllegalMoveError{Move: m}
	}
	next := p.child(m)
	next.finalize()
	return next, nil
}

// ApplyIndex decodes a move index and plays it. Decoding failures surface
// as InvalidMoveIndexError, illegal decoded moves as IllegalMoveError.
func (p *Position) ApplyIndex(index int) (*Position, error) {
	m, err := p.variant.DecodeMove(index)
	if err != nil {
		return nil, err
	}
	return p.Apply(m)
}

// child builds the successor position for a move without legality
// checking and without terminal analysis. The rule engine uses it for
// hypothetical positions during check and mate filtering; finalize must
// run before the position is handed to a caller.
func (p *Position) child(m Move) *Position {
	next := &Position{
		variant: p.variant,
		squares: make([]Piece, len(p.squares)),
		hands:   p.hands,
		player:  p.player.Opponent(),
		ply:     p.ply + 1,
		winner:  NoPlayer,
	}
	copy(next.squares, p.squares)

	switch mv := m.(type) {
	case BoardMove:
		moved := next.squares[mv.From]
		if captured := next.squares[mv.To]; !captured.IsEmpty() {
			// Captures relabel, never destroy: the piece joins the
			// mover's hand in its base kind.
			base := p.variant.BaseKind(captured.Type)
			next.hands[p.player][base]++
		}
		if mv.Promote {
			moved.Type = p.variant.PromotesTo(moved.Type)
		}
		next.squares[mv.From] = Piece{}
		next.squares[mv.To] = moved
	case DropMove:
		next.hands[p.player][mv.Piece]--
		next.squares[mv.To] = Piece{mv.Piece, p.player}
	}
	return next
}

// finalize computes the cached legal-move set and terminal status. Order
// of the terminal checks: the try rule (the mover's leader standing safely
// on the far rank wins immediately), then mate/stalemate (no legal reply
// loses), then the ply-limit draw.
func (p *Position) finalize() {
	p.moves = legalMoves(p)
	spec := p.variant.spec()

	if spec.tryRule && p.ply > 0 {
		mover := p.player.Opponent()
		if sq, ok := findLeader(p, mover); ok {
			row, _ := p.variant.RowCol(sq)
			if row == spec.backRank(mover) && !p.canCaptureSquare(sq) {
				p.terminal = true
				p.winner = mover
				p.moves = nil
				return
			}
		}
	}

	if len(p.moves) == 0 {
		// Checkmate and stalemate alike: a player with no legal
		// moves loses.
		p.terminal = true
		p.winner = p.player.Opponent()
		return
	}

	if p.ply >= spec.maxPly {
		p.terminal = true
		p.winner = NoPlayer
		p.moves = nil
	}
}

// canCaptureSquare reports whether any legal board move of the side to
// move lands on sq. Drops cannot capture.
func (p *Position) canCaptureSquare(sq Square) bool {
	for _, m := range p.moves {
		if !m.IsDrop() && m.Destination() == sq {
			return true
		}
	}
	return false
}
