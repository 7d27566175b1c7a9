package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
}

// letter is the single-character board rendering for the piece, uppercase
// for white and lowercase for black.
func (p *Piece) letter() string {
	l := p.Type.getPieceNotation()
	if l == "" {
		l = "P"
	}
	if p.Color == Black {
		l = string(l[0] + 32)
	}
	return l
}

var (
	rookDirs   = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	bishopDirs = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	knightDirs = []Position{{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2}}
	kingDirs   = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
)

// forward is the pawn advance direction for a color. White pawns start on
// row 1 and advance toward row 7.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) pawnStartRow() int {
	if c == White {
		return 1
	}
	return 6
}

// candidateSquares returns the raw movement geometry for a piece: every
// in-bounds square it could reach on an empty board, ignoring occupancy.
// Blocking, capture and check rules are applied by the legality engine.
func candidateSquares(piece *Piece) []Position {
	switch piece.Type {
	case Pawn:
		return pawnCandidates(piece)
	case Knight:
		return stepCandidates(piece.Position, knightDirs)
	case Bishop:
		return rayCandidates(piece.Position, bishopDirs)
	case Rook:
		return rayCandidates(piece.Position, rookDirs)
	case Queen:
		return append(rayCandidates(piece.Position, bishopDirs), rayCandidates(piece.Position, rookDirs)...)
	case King:
		return stepCandidates(piece.Position, kingDirs)
	default:
		return nil
	}
}

func pawnCandidates(piece *Piece) []Position {
	moves := []Position{}
	dir := piece.Color.forward()
	from := piece.Position
	// Forward one, two from the start row, and the two capture diagonals.
	if to := (Position{Row: from.Row + dir, Col: from.Col}); to.valid() {
		moves = append(moves, to)
	}
	if from.Row == piece.Color.pawnStartRow() {
		if to := (Position{Row: from.Row + 2*dir, Col: from.Col}); to.valid() {
			moves = append(moves, to)
		}
	}
	for _, dc := range []int{-1, 1} {
		if to := (Position{Row: from.Row + dir, Col: from.Col + dc}); to.valid() {
			moves = append(moves, to)
		}
	}
	return moves
}

func stepCandidates(from Position, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		to := Position{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		if to.valid() {
			moves = append(moves, to)
		}
	}
	return moves
}

func rayCandidates(from Position, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		to := Position{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		for to.valid() {
			moves = append(moves, to)
			to = Position{Row: to.Row + dir.Row, Col: to.Col + dir.Col}
		}
	}
	return moves
}
