package model

import "errors"

var (
	// ErrInvalidSquare covers out-of-range positions and empty source squares.
	ErrInvalidSquare = errors.New("invalid square")
	// ErrWrongColor is returned when a move targets a piece the side to move
	// does not own.
	ErrWrongColor = errors.New("piece belongs to opponent")
	// ErrIllegalMove is returned when the destination is not in the piece's
	// legal-move set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrKingNotFound signals a broken invariant: legal move generation never
	// allows a king capture, so a missing king is a programming error.
	ErrKingNotFound = errors.New("king not found")
)
