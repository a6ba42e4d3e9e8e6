package game

import "errors"

var (
	// ErrEmptySquare rejects a move requested from a square with no piece.
	ErrEmptySquare = errors.New("empty square")

	// ErrWrongTurn rejects moving a piece of the side not to move.
	ErrWrongTurn = errors.New("wrong turn")

	// ErrIllegalMove rejects a move impossible under the current board and
	// rights: wrong attack pattern, blocked path, missing castling right, or
	// an ineligible en passant capture.
	ErrIllegalMove = errors.New("illegal move")

	// ErrKingInCheck rejects a move that would leave the mover's own king
	// attacked. Detected by speculative application, then rolled back.
	ErrKingInCheck = errors.New("king in check")

	// ErrPromoting signals that a pawn reached the promotion rank through
	// MakeMove; the caller must retry via MakePromotion with an explicit
	// promotion piece. The position is left unchanged.
	ErrPromoting = errors.New("promoting")
)
