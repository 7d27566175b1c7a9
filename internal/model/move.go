package model

import "fmt"

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) valid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", p.Col+97, p.Row+1)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.Col+97)
}

// Move is a proposed transition, as handed in by the I/O layer.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply records one accepted half-move in the game history.
type Ply struct {
	Piece         *Piece   `json:"piece"`
	From          Position `json:"from"`
	To            Position `json:"to"`
	CapturedPiece *Piece   `json:"capturedPiece"`
	Notation      string   `json:"notation"`
}
