package model

import (
	"fmt"
	"strings"
)

// BoardState is the 8x8 occupancy grid, indexed [row][col]. Row 0 is white's
// back rank. Each cell holds at most one piece; a piece's Position always
// matches the cell it sits in.
type BoardState struct {
	Grid [8][8]*Piece `json:"board"`
}

func newBoard() *BoardState {
	board := &BoardState{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range backRank {
		board.Grid[0][col] = &Piece{Type: pt, Color: White, Position: Position{Row: 0, Col: col}}
		board.Grid[7][col] = &Piece{Type: pt, Color: Black, Position: Position{Row: 7, Col: col}}
	}
	for col := 0; col < 8; col++ {
		board.Grid[1][col] = &Piece{Type: Pawn, Color: White, Position: Position{Row: 1, Col: col}}
		board.Grid[6][col] = &Piece{Type: Pawn, Color: Black, Position: Position{Row: 6, Col: col}}
	}
	return board
}

func (b *BoardState) PieceAt(pos Position) (*Piece, bool) {
	if !pos.valid() {
		return nil, false
	}
	piece := b.Grid[pos.Row][pos.Col]
	return piece, piece != nil
}

// ApplyMove relocates the piece at from to to, returning the piece previously
// occupying to, if any. It is a mechanical mutator: it enforces square
// validity and source occupancy, never move legality.
func (b *BoardState) ApplyMove(from, to Position) (*Piece, error) {
	if !from.valid() || !to.valid() {
		return nil, fmt.Errorf("move %s to %s out of range: %w", from.getSquareNotation(), to.getSquareNotation(), ErrInvalidSquare)
	}
	piece := b.Grid[from.Row][from.Col]
	if piece == nil {
		return nil, fmt.Errorf("no piece at %s: %w", from.getSquareNotation(), ErrInvalidSquare)
	}
	captured := b.Grid[to.Row][to.Col]
	b.Grid[to.Row][to.Col] = piece
	b.Grid[from.Row][from.Col] = nil
	piece.Position = to
	return captured, nil
}

// IsPathClear reports whether every square strictly between from and to along
// a straight or diagonal line is unoccupied. Non-aligned square pairs have no
// path and report false.
func (b *BoardState) IsPathClear(from, to Position) bool {
	dRow := sign(to.Row - from.Row)
	dCol := sign(to.Col - from.Col)
	if from.Row != to.Row && from.Col != to.Col && abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}
	pos := Position{Row: from.Row + dRow, Col: from.Col + dCol}
	for pos != to {
		if b.Grid[pos.Row][pos.Col] != nil {
			return false
		}
		pos = Position{Row: pos.Row + dRow, Col: pos.Col + dCol}
	}
	return true
}

func (b *BoardState) FindKing(color Color) (Position, error) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.Grid[row][col]
			if piece != nil && piece.Type == King && piece.Color == color {
				return piece.Position, nil
			}
		}
	}
	return Position{}, fmt.Errorf("%s: %w", color, ErrKingNotFound)
}

// Clone returns an independent deep copy. Simulated moves during legality
// filtering run on a clone so the live board is never touched.
func (b *BoardState) Clone() *BoardState {
	clone := &BoardState{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if piece := b.Grid[row][col]; piece != nil {
				copied := *piece
				clone.Grid[row][col] = &copied
			}
		}
	}
	return clone
}

func (b *BoardState) countPieces() int {
	count := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.Grid[row][col] != nil {
				count++
			}
		}
	}
	return count
}

// String renders the board with rank 8 on top, white pieces uppercase.
func (b *BoardState) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < 8; col++ {
			if piece := b.Grid[row][col]; piece != nil {
				sb.WriteString(piece.letter() + " ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
