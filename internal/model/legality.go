package model

// LegalMoves computes the set of fully legal destinations for piece on board:
// raw geometry, filtered for blocking, captures, pawn rules, and finally for
// moves that would leave the mover's own king in check. King moves into an
// attacked square fall to the same filter.
func LegalMoves(board *BoardState, piece *Piece) []Position {
	legal := []Position{}
	for _, to := range pseudoLegalMoves(board, piece) {
		sim := board.Clone()
		if _, err := sim.ApplyMove(piece.Position, to); err != nil {
			continue
		}
		if !IsInCheck(sim, piece.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// pseudoLegalMoves applies every legality rule except the self-check filter.
// Check detection scans these sets for the attacked king, so they must not
// recurse into LegalMoves.
func pseudoLegalMoves(board *BoardState, piece *Piece) []Position {
	moves := []Position{}
	from := piece.Position
	for _, to := range candidateSquares(piece) {
		target := board.Grid[to.Row][to.Col]
		if target != nil && target.Color == piece.Color {
			continue
		}
		switch piece.Type {
		case Bishop, Rook, Queen:
			// Sliders stop at the first blocker; the blocker's own square
			// survives only as a capture, which the own-color filter above
			// already decided.
			if !board.IsPathClear(from, to) {
				continue
			}
		case Pawn:
			if to.Col == from.Col {
				// Forward moves need an empty destination, and an empty
				// intermediate square for the two-step advance.
				if target != nil {
					continue
				}
				if abs(to.Row-from.Row) == 2 && !board.IsPathClear(from, to) {
					continue
				}
			} else if target == nil {
				// Diagonals are capture-only.
				continue
			}
		}
		moves = append(moves, to)
	}
	return moves
}

// IsInCheck reports whether color's king is attacked by any opposing piece.
// Panics with ErrKingNotFound if the king is missing, since legality rules
// never allow a king capture.
func IsInCheck(board *BoardState, color Color) bool {
	kingPos, err := board.FindKing(color)
	if err != nil {
		panic(err)
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := board.Grid[row][col]
			if piece == nil || piece.Color == color {
				continue
			}
			for _, to := range pseudoLegalMoves(board, piece) {
				if to == kingPos {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate reports whether color is in check with no legal move left on
// any of its pieces.
func IsCheckmate(board *BoardState, color Color) bool {
	if !IsInCheck(board, color) {
		return false
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := board.Grid[row][col]
			if piece == nil || piece.Color != color {
				continue
			}
			if len(LegalMoves(board, piece)) > 0 {
				return false
			}
		}
	}
	return true
}
