package game

import "fmt"

// IllegalMoveError reports a move (or decoded move index) that is not in
// the legal-move set of the position it was applied to. The move is never
// coerced to a legal one.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	if e.Move == nil {
		return "illegal move: position is terminal"
	}
	return fmt.Sprintf("illegal move %v", e.Move)
}

// InvalidMoveIndexError reports a move index outside the variant's action
// space during decoding.
type InvalidMoveIndexError struct {
	Index   int
	Variant Variant
}

func (e *InvalidMoveIndexError) Error() string {
	return fmt.Sprintf("move index %d outside action space [0, %d) of variant %s",
		e.Index, e.Variant.ActionSpace(), e.Variant)
}

// MalformedEvaluatorOutputError reports an evaluator that violated its
// contract: wrong prior length, non-finite or negative prior mass, or a
// value outside [-1, 1]. A search run that hits this fails outright rather
// than falling back to a default move.
type MalformedEvaluatorOutputError struct {
	Reason string
}

func (e *MalformedEvaluatorOutputError) Error() string {
	return "malformed evaluator output: " + e.Reason
}
