package model

import (
	"testing"
)

// testBoard builds a board holding exactly the given pieces.
func testBoard(pieces ...*Piece) *BoardState {
	board := &BoardState{}
	for _, piece := range pieces {
		board.Grid[piece.Position.Row][piece.Position.Col] = piece
	}
	return board
}

func piecesOf(board *BoardState, color Color) []*Piece {
	result := []*Piece{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if piece := board.Grid[row][col]; piece != nil && piece.Color == color {
				result = append(result, piece)
			}
		}
	}
	return result
}

func TestOpeningLegalMoveCount(t *testing.T) {
	board := newBoard()

	for _, color := range []Color{White, Black} {
		total := 0
		for _, piece := range piecesOf(board, color) {
			total += len(LegalMoves(board, piece))
		}
		if total != 20 {
			t.Errorf("%s has %d legal opening moves, want 20", color, total)
		}
	}
}

func TestLegalMovesNeverTargetOwnColor(t *testing.T) {
	board := newBoard()
	// Open up some lines before scanning.
	mustApply(t, board, Position{Row: 1, Col: 4}, Position{Row: 3, Col: 4})
	mustApply(t, board, Position{Row: 6, Col: 3}, Position{Row: 4, Col: 3})
	mustApply(t, board, Position{Row: 0, Col: 6}, Position{Row: 2, Col: 5})

	for _, color := range []Color{White, Black} {
		for _, piece := range piecesOf(board, color) {
			for _, to := range LegalMoves(board, piece) {
				if target, ok := board.PieceAt(to); ok && target.Color == piece.Color {
					t.Errorf("%s %s at %v may capture own %s at %v", color, piece.Type, piece.Position, target.Type, to)
				}
			}
		}
	}
}

func TestLegalMovesNeverExposeOwnKing(t *testing.T) {
	board := newBoard()
	mustApply(t, board, Position{Row: 1, Col: 4}, Position{Row: 3, Col: 4})
	mustApply(t, board, Position{Row: 6, Col: 5}, Position{Row: 4, Col: 5})

	for _, color := range []Color{White, Black} {
		for _, piece := range piecesOf(board, color) {
			for _, to := range LegalMoves(board, piece) {
				sim := board.Clone()
				if _, err := sim.ApplyMove(piece.Position, to); err != nil {
					t.Fatalf("apply simulated move: %v", err)
				}
				if IsInCheck(sim, color) {
					t.Errorf("legal move %s %v to %v leaves own king in check", piece.Type, piece.Position, to)
				}
			}
		}
	}
}

func TestLegalMovesIsIdempotent(t *testing.T) {
	board := newBoard()
	knight, _ := board.PieceAt(Position{Row: 0, Col: 1})

	first := LegalMoves(board, knight)
	second := LegalMoves(board, knight)
	if len(first) != len(second) {
		t.Fatalf("repeated LegalMoves disagree: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated LegalMoves disagree: %v vs %v", first, second)
		}
	}
}

func TestRookBlockedByAlly(t *testing.T) {
	rook := &Piece{Type: Rook, Color: White, Position: Position{Row: 0, Col: 0}}
	board := testBoard(
		rook,
		&Piece{Type: Pawn, Color: White, Position: Position{Row: 2, Col: 0}},
		&Piece{Type: King, Color: White, Position: Position{Row: 0, Col: 4}},
		&Piece{Type: King, Color: Black, Position: Position{Row: 7, Col: 4}},
	)

	moves := LegalMoves(board, rook)
	want := []Position{
		{Row: 1, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 0, Col: 3},
	}
	assertSameSquares(t, moves, want)
}

func TestRookCapturesBlockingEnemy(t *testing.T) {
	rook := &Piece{Type: Rook, Color: White, Position: Position{Row: 0, Col: 0}}
	board := testBoard(
		rook,
		&Piece{Type: Pawn, Color: Black, Position: Position{Row: 2, Col: 0}},
		&Piece{Type: King, Color: White, Position: Position{Row: 0, Col: 4}},
		&Piece{Type: King, Color: Black, Position: Position{Row: 7, Col: 4}},
	)

	moves := LegalMoves(board, rook)
	want := []Position{
		{Row: 1, Col: 0},
		{Row: 2, Col: 0}, // the blocker itself is capturable
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 0, Col: 3},
	}
	assertSameSquares(t, moves, want)
}

func TestPawnRules(t *testing.T) {
	t.Run("no forward capture", func(t *testing.T) {
		pawn := &Piece{Type: Pawn, Color: White, Position: Position{Row: 3, Col: 4}}
		board := testBoard(
			pawn,
			&Piece{Type: Pawn, Color: Black, Position: Position{Row: 4, Col: 4}},
			&Piece{Type: King, Color: White, Position: Position{Row: 0, Col: 4}},
			&Piece{Type: King, Color: Black, Position: Position{Row: 7, Col: 4}},
		)
		if moves := LegalMoves(board, pawn); len(moves) != 0 {
			t.Fatalf("head-on pawn should have no moves, got %v", moves)
		}
	})

	t.Run("diagonal requires enemy", func(t *testing.T) {
		pawn := &Piece{Type: Pawn, Color: White, Position: Position{Row: 3, Col: 4}}
		board := testBoard(
			pawn,
			&Piece{Type: Knight, Color: Black, Position: Position{Row: 4, Col: 3}},
			&Piece{Type: King, Color: White, Position: Position{Row: 0, Col: 4}},
			&Piece{Type: King, Color: Black, Position: Position{Row: 7, Col: 4}},
		)
		want := []Position{
			{Row: 4, Col: 4}, // forward
			{Row: 4, Col: 3}, // capture
		}
		assertSameSquares(t, LegalMoves(board, pawn), want)
	})

	t.Run("double step needs clear path", func(t *testing.T) {
		board := newBoard()
		// A knight parked in front of the pawn blocks both steps.
		board.Grid[2][4] = &Piece{Type: Knight, Color: Black, Position: Position{Row: 2, Col: 4}}
		pawn, _ := board.PieceAt(Position{Row: 1, Col: 4})
		if moves := LegalMoves(board, pawn); len(moves) != 0 {
			t.Fatalf("blocked pawn should have no forward moves, got %v", moves)
		}
	})
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	board := newBoard()
	mustApply(t, board, Position{Row: 1, Col: 5}, Position{Row: 2, Col: 5}) // f3
	mustApply(t, board, Position{Row: 6, Col: 4}, Position{Row: 4, Col: 4}) // e5
	mustApply(t, board, Position{Row: 1, Col: 6}, Position{Row: 3, Col: 6}) // g4
	mustApply(t, board, Position{Row: 7, Col: 3}, Position{Row: 3, Col: 7}) // Qh4#

	if !IsInCheck(board, White) {
		t.Fatal("white should be in check")
	}
	if !IsCheckmate(board, White) {
		t.Fatal("white should be checkmated")
	}
	if IsCheckmate(board, Black) {
		t.Fatal("black is not checkmated")
	}
}

func TestCheckWithEscapeIsNotCheckmate(t *testing.T) {
	board := testBoard(
		&Piece{Type: King, Color: White, Position: Position{Row: 0, Col: 4}},
		&Piece{Type: Rook, Color: Black, Position: Position{Row: 4, Col: 4}},
		&Piece{Type: King, Color: Black, Position: Position{Row: 7, Col: 0}},
	)

	if !IsInCheck(board, White) {
		t.Fatal("white should be in check from the rook")
	}
	if IsCheckmate(board, White) {
		t.Fatal("white has escape squares, not checkmate")
	}
}

func TestKingCannotWalkIntoAttack(t *testing.T) {
	king := &Piece{Type: King, Color: White, Position: Position{Row: 0, Col: 0}}
	board := testBoard(
		king,
		&Piece{Type: Rook, Color: Black, Position: Position{Row: 7, Col: 1}},
		&Piece{Type: King, Color: Black, Position: Position{Row: 7, Col: 7}},
	)

	for _, to := range LegalMoves(board, king) {
		if to.Col == 1 {
			t.Fatalf("king may step into the rook's file at %v", to)
		}
	}
}

func mustApply(t *testing.T, board *BoardState, from, to Position) {
	t.Helper()
	if _, err := board.ApplyMove(from, to); err != nil {
		t.Fatalf("apply %v to %v: %v", from, to, err)
	}
}

func assertSameSquares(t *testing.T, got, want []Position) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d moves %v, want %d moves %v", len(got), got, len(want), want)
	}
	for _, w := range want {
		if !containsPosition(got, w) {
			t.Fatalf("missing %v in %v", w, got)
		}
	}
	seen := map[Position]bool{}
	for _, g := range got {
		if seen[g] {
			t.Fatalf("duplicate square %v in %v", g, got)
		}
		seen[g] = true
	}
}
