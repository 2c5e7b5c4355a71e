package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestNewPosition(t *testing.T) {
	t.Run("animal starting placement", func(t *testing.T) {
		p := NewPosition(Animal)
		require.Equal(t, Sente, p.Player(), "Sente should move first")
		require.Equal(t, 0, p.Ply(), "No moves played yet")
		require.False(t, p.IsTerminal(), "Starting position should not be terminal")
		require.Equal(t, Piece{Lion, Gote}, p.PieceAt(1), "Gote lion on the top rank")
		require.Equal(t, Piece{Lion, Sente}, p.PieceAt(10), "Sente lion on the bottom rank")
		require.Equal(t, Piece{Chick, Gote}, p.PieceAt(4), "Chicks face each other")
		require.Equal(t, Piece{Chick, Sente}, p.PieceAt(7), "Chicks face each other")
		for pl := Sente; pl <= Gote; pl++ {
			for _, pt := range Animal.Droppable() {
				require.Zero(t, p.HandCount(pl, pt), "Hands start empty")
			}
		}
	})

	t.Run("full starting placement", func(t *testing.T) {
		p := NewPosition(Full)
		require.Equal(t, Piece{King, Gote}, p.PieceAt(4), "Gote king on the center file")
		require.Equal(t, Piece{King, Sente}, p.PieceAt(76), "Sente king on the center file")
		require.Equal(t, Piece{Rook, Gote}, p.PieceAt(10), "Gote rook on its second rank")
		require.Equal(t, Piece{Bishop, Sente}, p.PieceAt(64), "Sente bishop on its second rank")
		for c := 0; c < 9; c++ {
			require.Equal(t, Piece{Pawn, Gote}, p.PieceAt(Full.SquareAt(2, c)), "Gote pawn row")
			require.Equal(t, Piece{Pawn, Sente}, p.PieceAt(Full.SquareAt(6, c)), "Sente pawn row")
		}
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("round trip preserves the position", func(t *testing.T) {
		p := NewPosition(Animal)
		p, err := p.Apply(BoardMove{From: 7, To: 4}) // chick takes chick
		require.NoError(t, err, "Opening capture should be legal")

		restored, err := FromSnapshot(p.Snapshot())
		require.NoError(t, err, "A snapshot of a live position should restore")
		require.Equal(t, p.Player(), restored.Player(), "Side to move survives")
		require.Equal(t, p.Ply(), restored.Ply(), "Ply count survives")
		require.Equal(t, 1, restored.HandCount(Sente, Chick), "Hand contents survive")
		require.Equal(t, p.LegalMoves(), restored.LegalMoves(),
			"Restored position should generate the identical move list")
	})

	t.Run("wrong board size fails", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Squares = s.Squares[:11]
		_, err := FromSnapshot(s)
		require.Error(t, err, "Board must have exactly 12 squares")
	})

	t.Run("missing leader fails", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Squares[1] = Piece{}
		_, err := FromSnapshot(s)
		require.Error(t, err, "Each side needs exactly one lion")
	})

	t.Run("foreign piece kind fails", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Squares[5] = Piece{Dragon, Sente}
		_, err := FromSnapshot(s)
		require.Error(t, err, "Animal variant has no dragons")
	})

	t.Run("non-droppable kind in hand fails", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Hands[Sente][Lion] = 1
		_, err := FromSnapshot(s)
		require.Error(t, err, "A lion can never be in hand")
	})

	t.Run("negative hand count fails", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Hands[Gote][Chick] = -1
		_, err := FromSnapshot(s)
		require.Error(t, err, "Hand counts must be non-negative")
	})
}

func TestPositionImmutability(t *testing.T) {
	t.Run("apply leaves the parent untouched", func(t *testing.T) {
		p := NewPosition(Animal)
		before := p.Snapshot()
		_, err := p.Apply(BoardMove{From: 7, To: 4})
		require.NoError(t, err, "Opening capture should be legal")
		require.Equal(t, before, p.Snapshot(), "Parent position must not change")
	})

	t.Run("mutating a returned move list changes nothing", func(t *testing.T) {
		p := NewPosition(Animal)
		moves := p.LegalMoves()
		moves[0] = DropMove{Piece: Chick, To: 0}
		require.NotEqual(t, moves[0], p.LegalMoves()[0],
			"LegalMoves should return a defensive copy")
	})
}

// countPieces tallies every piece by base kind across the board and both
// hands.
func countPieces(p *Position) map[PieceType]int {
	counts := map[PieceType]int{}
	for sq := Square(0); int(sq) < p.Variant().NumSquares(); sq++ {
		if pc := p.PieceAt(sq); !pc.IsEmpty() {
			counts[p.Variant().BaseKind(pc.Type)]++
		}
	}
	for pl := Sente; pl <= Gote; pl++ {
		for _, pt := range p.Variant().Droppable() {
			counts[pt] += p.HandCount(pl, pt)
		}
	}
	return counts
}

func TestPieceConservation(t *testing.T) {
	// Pieces are captured and dropped but never created or destroyed, so
	// the per-kind census is invariant over any playout.
	for _, variant := range []Variant{Animal, Full} {
		t.Run(variant.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			p := NewPosition(variant)
			want := countPieces(p)
			for i := 0; i < 100 && !p.IsTerminal(); i++ {
				moves := p.LegalMoves()
				next, err := p.Apply(moves[rng.Intn(len(moves))])
				require.NoError(t, err, "Legal move should apply")
				p = next
				require.Equal(t, want, countPieces(p),
					"Census should be invariant at ply %d", p.Ply())
			}
		})
	}
}
