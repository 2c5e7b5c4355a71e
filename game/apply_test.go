package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("capture moves the piece into the hand", func(t *testing.T) {
		p := NewPosition(Animal)
		next, err := p.Apply(BoardMove{From: 7, To: 4})
		require.NoError(t, err, "Opening capture should be legal")
		require.Equal(t, Piece{Chick, Sente}, next.PieceAt(4), "The chick advanced")
		require.True(t, next.PieceAt(7).IsEmpty(), "The origin square cleared")
		require.Equal(t, 1, next.HandCount(Sente, Chick), "The captured chick is in hand")
		require.Equal(t, Gote, next.Player(), "The turn passed")
		require.Equal(t, 1, next.Ply(), "The ply advanced")
	})

	t.Run("captured promoted piece demotes in hand", func(t *testing.T) {
		p, err := FromSnapshot(Snapshot{
			Variant: Full,
			Squares: placed(Full, map[Square]Piece{
				40: {Rook, Sente},
				42: {PromotedPawn, Gote},
				72: {King, Sente},
				8:  {King, Gote},
			}),
			Player: Sente,
		})
		require.NoError(t, err, "Snapshot should restore")
		next, err := p.Apply(BoardMove{From: 40, To: 42})
		require.NoError(t, err, "Rook should reach the promoted pawn")
		require.Equal(t, 1, next.HandCount(Sente, Pawn),
			"A captured promoted pawn reverts to a plain pawn")
		require.Zero(t, next.HandCount(Sente, PromotedPawn),
			"Promoted kinds never sit in a hand")
	})

	t.Run("promotion relabels the moved piece", func(t *testing.T) {
		p, err := FromSnapshot(Snapshot{
			Variant: Full,
			Squares: placed(Full, map[Square]Piece{
				31: {Pawn, Sente},
				72: {King, Sente},
				8:  {King, Gote},
			}),
			Player: Sente,
		})
		require.NoError(t, err, "Snapshot should restore")
		next, err := p.Apply(BoardMove{From: 31, To: 22, Promote: true})
		require.NoError(t, err, "Promotion in the zone should be legal")
		require.Equal(t, Piece{PromotedPawn, Sente}, next.PieceAt(22),
			"The pawn promoted on landing")
	})

	t.Run("drop places the piece and empties the hand", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Squares[7] = Piece{}
		s.Hands[Sente][Chick] = 1
		p, err := FromSnapshot(s)
		require.NoError(t, err, "Snapshot should restore")
		next, err := p.Apply(DropMove{Piece: Chick, To: 5})
		require.NoError(t, err, "Drop on an empty square should be legal")
		require.Equal(t, Piece{Chick, Sente}, next.PieceAt(5), "The chick landed")
		require.Zero(t, next.HandCount(Sente, Chick), "The hand emptied")
	})

	t.Run("illegal move fails", func(t *testing.T) {
		p := NewPosition(Animal)
		_, err := p.Apply(BoardMove{From: 10, To: 7})
		require.Error(t, err, "Moving onto an own piece is illegal")
		require.IsType(t, &IllegalMoveError{}, err, "Failure should name the move")
	})

	t.Run("any move on a terminal position fails", func(t *testing.T) {
		p := matedPosition(t)
		_, err := p.Apply(BoardMove{From: 0, To: 1})
		require.Error(t, err, "Terminal positions accept no moves")
		require.IsType(t, &IllegalMoveError{}, err, "Failure should be the illegal-move kind")
	})
}

func TestApplyIndex(t *testing.T) {
	t.Run("index plays the decoded move", func(t *testing.T) {
		p := NewPosition(Animal)
		next, err := p.ApplyIndex(Animal.EncodeMove(BoardMove{From: 7, To: 4}))
		require.NoError(t, err, "Legal index should apply")
		require.Equal(t, Piece{Chick, Sente}, next.PieceAt(4), "The chick advanced")
	})

	t.Run("out of range index fails", func(t *testing.T) {
		p := NewPosition(Animal)
		_, err := p.ApplyIndex(Animal.ActionSpace())
		require.IsType(t, &InvalidMoveIndexError{}, err, "Decoding should fail first")
	})

	t.Run("in range but illegal index fails", func(t *testing.T) {
		p := NewPosition(Animal)
		_, err := p.ApplyIndex(Animal.EncodeMove(BoardMove{From: 10, To: 7}))
		require.IsType(t, &IllegalMoveError{}, err, "Legality is re-checked after decoding")
	})
}

func TestTerminalPositions(t *testing.T) {
	t.Run("checkmate ends the game", func(t *testing.T) {
		p := matedPosition(t)
		require.True(t, p.IsTerminal(), "Mate is terminal")
		require.Equal(t, Sente, p.Winner(), "The mating side wins")
		require.Empty(t, p.LegalMoves(), "Terminal positions have no moves")
	})

	t.Run("stalemate loses for the stuck side", func(t *testing.T) {
		p, err := FromSnapshot(Snapshot{
			Variant: Animal,
			Squares: placed(Animal, map[Square]Piece{
				0: {Lion, Gote},
				4: {Giraffe, Sente},
				7: {Lion, Sente},
			}),
			Player: Gote,
		})
		require.NoError(t, err, "Snapshot should restore")
		require.True(t, p.IsTerminal(), "No legal move ends the game")
		require.Equal(t, Sente, p.Winner(), "A player with no moves loses, in check or not")
	})

	t.Run("lion reaching the far rank wins", func(t *testing.T) {
		p, err := FromSnapshot(Snapshot{
			Variant: Animal,
			Squares: placed(Animal, map[Square]Piece{
				3: {Lion, Sente},
				2: {Lion, Gote},
			}),
			Player: Sente,
		})
		require.NoError(t, err, "Snapshot should restore")
		next, err := p.Apply(BoardMove{From: 3, To: 0})
		require.NoError(t, err, "The lion may step onto an unguarded far rank")
		require.True(t, next.IsTerminal(), "A safe lion on the far rank ends the game")
		require.Equal(t, Sente, next.Winner(), "The escaping side wins")
	})

	t.Run("ply limit draws the game", func(t *testing.T) {
		s := NewPosition(Animal).Snapshot()
		s.Ply = Animal.MaxPly()
		p, err := FromSnapshot(s)
		require.NoError(t, err, "Snapshot should restore")
		require.True(t, p.IsTerminal(), "The ply limit ends the game")
		require.Equal(t, NoPlayer, p.Winner(), "Neither side wins a drawn game")
	})
}

// matedPosition returns an animal position where gote has just been
// mated: the giraffe checks the cornered lion and the elephant guards it.
func matedPosition(t *testing.T) *Position {
	t.Helper()
	p, err := FromSnapshot(Snapshot{
		Variant: Animal,
		Squares: placed(Animal, map[Square]Piece{
			0: {Lion, Gote},
			3: {Chick, Gote},
			1: {Giraffe, Sente},
			5: {Elephant, Sente},
			8: {Lion, Sente},
		}),
		Player: Gote,
	})
	require.NoError(t, err, "Snapshot should restore")
	return p
}
