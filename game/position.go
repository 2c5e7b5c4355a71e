package game

import "fmt"

// Position is one immutable board configuration: piece placement, hands,
// side to move and ply count, with terminal status and the legal-move set
// cached at construction. Applying a move returns a new Position; an
// existing one is never modified, so search trees may share ancestors
// freely across goroutines.
type Position struct {
	variant Variant
	squares []Piece
	hands   [2][pieceKinds]int8
	player  Player
	ply     int

	moves    []Move
	terminal bool
	winner   Player
}

// NewPosition returns the variant's standard starting position with Sente
// to move.
func NewPosition(v Variant) *Position {
	p := &Position{
		variant: v,
		squares: v.spec().setup(),
		player:  Sente,
		winner:  NoPlayer,
	}
	p.finalize()
	return p
}

// Snapshot is the transportable form of a Position: board contents, hands,
// side to move and ply fully determine the game state.
type Snapshot struct {
	Variant Variant
	Squares []Piece
	Hands   [2]map[PieceType]int
	Player  Player
	Ply     int
}

// FromSnapshot reconstructs a Position, validating board shape, piece
// kinds, hand contents and leader count. Terminal status and legal moves
// are recomputed, not transported.
func FromSnapshot(s Snapshot) (*Position, error) {
	spec := s.Variant.spec()
	if len(s.Squares) != s.Variant.NumSquares() {
		return nil, fmt.Errorf("snapshot has %d squares, variant %s needs %d",
			len(s.Squares), s.Variant, s.Variant.NumSquares())
	}
	if s.Player != Sente && s.Player != Gote {
		return nil, fmt.Errorf("snapshot side to move %d is not a player", s.Player)
	}
	if s.Ply < 0 {
		return nil, fmt.Errorf("snapshot ply %d is negative", s.Ply)
	}

	p := &Position{
		variant: s.Variant,
		squares: make([]Piece, len(s.Squares)),
		player:  s.Player,
		ply:     s.Ply,
		winner:  NoPlayer,
	}
	leaders := [2]int{}
	for i, pc := range s.Squares {
		if pc.IsEmpty() {
			continue
		}
		if !s.Variant.validKind(pc.Type) {
			return nil, fmt.Errorf("snapshot square %d holds kind %d unknown to variant %s",
				i, pc.Type, s.Variant)
		}
		if pc.Owner != Sente && pc.Owner != Gote {
			return nil, fmt.Errorf("snapshot square %d holds a piece with owner %d", i, pc.Owner)
		}
		if pc.Type == spec.leader {
			leaders[pc.Owner]++
		}
		p.squares[i] = pc
	}
	if leaders[Sente] != 1 || leaders[Gote] != 1 {
		return nil, fmt.Errorf("snapshot must hold exactly one leader per side, got %d and %d",
			leaders[Sente], leaders[Gote])
	}
	for pl, hand := range s.Hands {
		for pt, count := range hand {
			if count < 0 {
				return nil, fmt.Errorf("snapshot hand count %d for kind %d is negative", count, pt)
			}
			if count > 0 && s.Variant.dropRank(pt) < 0 {
				return nil, fmt.Errorf("kind %d cannot be held in hand in variant %s", pt, s.Variant)
			}
			p.hands[pl][pt] = int8(count)
		}
	}
	p.finalize()
	return p, nil
}

// Snapshot returns the transportable form of the position.
func (p *Position) Snapshot() Snapshot {
	s := Snapshot{
		Variant: p.variant,
		Squares: make([]Piece, len(p.squares)),
		Player:  p.player,
		Ply:     p.ply,
	}
	copy(s.Squares, p.squares)
	for pl := range p.hands {
		s.Hands[pl] = map[PieceType]int{}
		for pt, count := range p.hands[pl] {
			if count > 0 {
				s.Hands[pl][PieceType(pt)] = int(count)
			}
		}
	}
	return s
}

// Variant returns the rule set the position belongs to.
func (p *Position) Variant() Variant { return p.variant }

// Player returns the side to move.
func (p *Position) Player() Player { return p.player }

// Ply returns the number of moves played from the starting position.
func (p *Position) Ply() int { return p.ply }

// PieceAt returns the piece on a square; the zero Piece when empty.
func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

// HandCount returns how many pieces of a kind a player holds in hand.
func (p *Position) HandCount(pl Player, pt PieceType) int {
	return int(p.hands[pl][pt])
}

// IsTerminal reports whether the game is over.
func (p *Position) IsTerminal() bool { return p.terminal }

// Winner returns the winning side of a terminal position, or NoPlayer for
// a draw or an unfinished game.
func (p *Position) Winner() Player { return p.winner }

// LegalMoves returns the legal moves of the side to move, in the
// position's canonical order: board moves by ascending origin square and
// table order, then drops by kind rank and ascending target square. The
// order is deterministic for a given position. Terminal positions have no
// legal moves.
func (p *Position) LegalMoves() []Move {
	moves := make([]Move, len(p.moves))
	copy(moves, p.moves)
	return moves
}

// LegalMoveIndexes returns the legal moves encoded into the variant's
// action space, in canonical move order.
func (p *Position) LegalMoveIndexes() []int {
	indexes := make([]int, len(p.moves))
	for i, m := range p.moves {
		indexes[i] = p.variant.EncodeMove(m)
	}
	return indexes
}

// IsLegal reports whether a move is in the position's legal-move set.
func (p *Position) IsLegal(m Move) bool {
	for _, legal := range p.moves {
		if legal == m {
			return true
		}
	}
	return false
}

// validKind reports whether a kind belongs to the variant's enumeration.
func (v Variant) validKind(pt PieceType) bool {
	s := v.spec()
	if _, ok := s.steps[pt]; ok {
		return true
	}
	if _, ok := s.jumps[pt]; ok {
		return true
	}
	_, ok := s.slides[pt]
	return ok
}
