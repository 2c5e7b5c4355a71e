package game

// Legal move generation: pseudo-legal board moves and drops, then the
// self-check filter, then (full variant) the drop-mate filter on pawn
// drops. Iteration is square-ascending and table-ordered throughout so
// the output order is deterministic for a given position.

func legalMoves(p *Position) []Move {
	spec := p.variant.spec()
	pseudo := pseudoLegalMoves(p)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := p.child(m)
		if inCheck(next, p.player) {
			continue
		}
		if spec.pawnKind != NoPieceType {
			if drop, ok := m.(DropMove); ok && drop.Piece == spec.pawnKind && isMate(next) {
				// Drop-mate prohibition: a pawn drop may check,
				// but never checkmate.
				continue
			}
		}
		legal = append(legal, m)
	}
	return legal
}

// isMate reports whether the side to move is in check with no legal
// escape. The escape scan applies the self-check filter but not the
// drop-mate filter: a defender's own pawn drop can only block the check,
// never simultaneously mate the attacker, so the nested filter cannot
// change the outcome.
func isMate(p *Position) bool {
	if !inCheck(p, p.player) {
		return false
	}
	for _, m := range pseudoLegalMoves(p) {
		if !inCheck(p.child(m), p.player) {
			return false
		}
	}
	return true
}

func pseudoLegalMoves(p *Position) []Move {
	var moves []Move
	for sq := Square(0); int(sq) < len(p.squares); sq++ {
		pc := p.squares[sq]
		if pc.IsEmpty() || pc.Owner != p.player {
			continue
		}
		boardMovesFrom(p, sq, pc, &moves)
	}
	dropMoves(p, &moves)
	return moves
}

// boardMovesFrom appends all pseudo-legal moves of the piece on sq:
// steps, then jumps, then slides, each in table order.
func boardMovesFrom(p *Position, sq Square, pc Piece, moves *[]Move) {
	spec := p.variant.spec()
	row, col := p.variant.RowCol(sq)

	for _, d := range spec.steps[pc.Type] {
		r, c := row+forward(pc.Owner, d.dr), col+d.dc
		if !p.variant.OnBoard(r, c) {
			continue
		}
		if target := p.squares[p.variant.SquareAt(r, c)]; !target.IsEmpty() && target.Owner == pc.Owner {
			continue
		}
		appendWithPromotion(p, sq, p.variant.SquareAt(r, c), pc, row, r, moves)
	}

	for _, d := range spec.jumps[pc.Type] {
		r, c := row+forward(pc.Owner, d.dr), col+d.dc
		if !p.variant.OnBoard(r, c) {
			continue
		}
		if target := p.squares[p.variant.SquareAt(r, c)]; !target.IsEmpty() && target.Owner == pc.Owner {
			continue
		}
		appendWithPromotion(p, sq, p.variant.SquareAt(r, c), pc, row, r, moves)
	}

	for _, d := range spec.slides[pc.Type] {
		dr := forward(pc.Owner, d.dr)
		r, c := row+dr, col+d.dc
		for p.variant.OnBoard(r, c) {
			target := p.squares[p.variant.SquareAt(r, c)]
			if !target.IsEmpty() && target.Owner == pc.Owner {
				break
			}
			appendWithPromotion(p, sq, p.variant.SquareAt(r, c), pc, row, r, moves)
			if !target.IsEmpty() {
				break
			}
			r, c = r+dr, c+d.dc
		}
	}
}

// appendWithPromotion expands a board move into its promotion variants.
// Inside the zone (entering, leaving or crossing it) a promotable piece
// may promote; it must when the destination would leave it without a
// further move.
func appendWithPromotion(p *Position, from, to Square, pc Piece, fromRow, toRow int, moves *[]Move) {
	spec := p.variant.spec()
	canPromote := spec.promotions[pc.Type] != NoPieceType
	inZone := spec.inPromotionZone(pc.Owner, fromRow) || spec.inPromotionZone(pc.Owner, toRow)
	must := spec.depthFromFarEdge(pc.Owner, toRow) < spec.forcedPromotionDepth[pc.Type]

	if canPromote && inZone {
		*moves = append(*moves, BoardMove{From: from, To: to, Promote: true})
		if !must {
			*moves = append(*moves, BoardMove{From: from, To: to})
		}
		return
	}
	*moves = append(*moves, BoardMove{From: from, To: to})
}

// dropMoves appends a drop for every held kind and empty square, subject
// to the variant's nifu and dead-square restrictions.
func dropMoves(p *Position, moves *[]Move) {
	spec := p.variant.spec()
	for _, pt := range spec.droppable {
		if p.hands[p.player][pt] == 0 {
			continue
		}
		for sq := Square(0); int(sq) < len(p.squares); sq++ {
			if !p.squares[sq].IsEmpty() {
				continue
			}
			row, col := p.variant.RowCol(sq)
			if spec.depthFromFarEdge(p.player, row) < spec.noDropDepth[pt] {
				continue
			}
			if pt == spec.pawnKind && p.hasPawnOnFile(p.player, col) {
				continue
			}
			*moves = append(*moves, DropMove{Piece: pt, To: sq})
		}
	}
}

// hasPawnOnFile reports whether pl has an unpromoted pawn on the file
// (nifu: two own pawns on one file are forbidden in the full variant).
func (p *Position) hasPawnOnFile(pl Player, col int) bool {
	spec := p.variant.spec()
	for row := 0; row < spec.rows; row++ {
		pc := p.squares[p.variant.SquareAt(row, col)]
		if pc.Type == spec.pawnKind && pc.Owner == pl {
			return true
		}
	}
	return false
}

// inCheck reports whether pl's leader is attacked. A missing leader
// counts as in check so that hypothetical leader captures are rejected by
// the legality filter.
func inCheck(p *Position, pl Player) bool {
	leader, ok := findLeader(p, pl)
	if !ok {
		return true
	}
	opponent := pl.Opponent()
	for sq := Square(0); int(sq) < len(p.squares); sq++ {
		pc := p.squares[sq]
		if pc.IsEmpty() || pc.Owner != opponent {
			continue
		}
		if attacksSquare(p, sq, pc, leader) {
			return true
		}
	}
	return false
}

func findLeader(p *Position, pl Player) (Square, bool) {
	leader := p.variant.spec().leader
	for sq := Square(0); int(sq) < len(p.squares); sq++ {
		pc := p.squares[sq]
		if pc.Type == leader && pc.Owner == pl {
			return sq, true
		}
	}
	return 0, false
}

// attacksSquare reports whether the piece on from attacks target.
func attacksSquare(p *Position, from Square, pc Piece, target Square) bool {
	spec := p.variant.spec()
	row, col := p.variant.RowCol(from)
	targetRow, targetCol := p.variant.RowCol(target)

	for _, d := range spec.steps[pc.Type] {
		if row+forward(pc.Owner, d.dr) == targetRow && col+d.dc == targetCol {
			return true
		}
	}
	for _, d := range spec.jumps[pc.Type] {
		if row+forward(pc.Owner, d.dr) == targetRow && col+d.dc == targetCol {
			return true
		}
	}
	for _, d := range spec.slides[pc.Type] {
		dr := forward(pc.Owner, d.dr)
		r, c := row+dr, col+d.dc
		for p.variant.OnBoard(r, c) {
			if r == targetRow && c == targetCol {
				return true
			}
			if !p.squares[p.variant.SquareAt(r, c)].IsEmpty() {
				break
			}
			r, c = r+dr, c+d.dc
		}
	}
	return false
}

// forward mirrors the row component of a delta for Gote, whose pieces
// advance toward the last row.
func forward(pl Player, dr int) int {
	if pl == Gote {
		return -dr
	}
	return dr
}
