package model

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/hmoretti/chess-backend/internal/ws"
)

type GameStatus string

const (
	StatusOngoing   GameStatus = "ongoing"
	StatusCheck     GameStatus = "check"
	StatusCheckmate GameStatus = "checkmate"
)

type GameState struct {
	Board          *BoardState    `json:"boardState"`
	ToMove         Color          `json:"toMove"`
	Status         GameStatus     `json:"status"`
	StatusColor    *Color         `json:"statusColor"` // side in check or mated; nil while ongoing
	MoveHistory    []Ply          `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *Move          `json:"lastMove"`
	WhiteElapsedMs int64          `json:"whiteElapsedMs"`
	BlackElapsedMs int64          `json:"blackElapsedMs"`
}

type CapturedPieces struct {
	White []Piece `json:"white"` // white pieces captured by black
	Black []Piece `json:"black"`
}

// The connections attached to a specific game, keyed by client ID.
type GameConnections struct {
	connections map[string]*websocket.Conn
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game owns a single game's state: turn order, legality checks, status
// evaluation, and the observers watching it. State changes only through
// AttemptMove; every failure leaves it untouched.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

func NewGame(id string) *Game {
	g := &Game{
		ID:          id,
		state:       newGameState(),
		connections: NewGameConnections(),
		whiteClock:  NewClock(),
		blackClock:  NewClock(),
	}
	g.whiteClock.Start()
	return g
}

func newGameState() GameState {
	return GameState{
		Board:          newBoard(),
		ToMove:         White,
		Status:         StatusOngoing,
		StatusColor:    nil,
		MoveHistory:    make([]Ply, 0),
		CapturedPieces: newCapturedPieces(),
		LastMove:       nil,
	}
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// GetState returns a snapshot with its own board copy, so callers never see
// later mutations of the live game.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotState()
}

func (g *Game) snapshotState() GameState {
	state := g.state
	state.Board = g.state.Board.Clone()
	state.WhiteElapsedMs = g.whiteClock.Elapsed().Milliseconds()
	state.BlackElapsedMs = g.blackClock.Elapsed().Milliseconds()
	return state
}

// AttemptMove validates and applies one move for the side to move. On success
// the opponent's check/checkmate status is recomputed and the turn passes.
// Failures are typed (ErrInvalidSquare, ErrWrongColor, ErrIllegalMove) and
// transactional: the game is exactly as it was.
func (g *Game) AttemptMove(from, to Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status == StatusCheckmate {
		return fmt.Errorf("game is over: %w", ErrIllegalMove)
	}
	if !from.valid() || !to.valid() {
		return fmt.Errorf("move %v to %v out of range: %w", from, to, ErrInvalidSquare)
	}
	piece, ok := g.state.Board.PieceAt(from)
	if !ok {
		return fmt.Errorf("no piece at %s: %w", from.getSquareNotation(), ErrInvalidSquare)
	}
	if piece.Color != g.state.ToMove {
		return fmt.Errorf("%s to move: %w", g.state.ToMove, ErrWrongColor)
	}
	if !containsPosition(LegalMoves(g.state.Board, piece), to) {
		return fmt.Errorf("%s %s to %s: %w", piece.Color, piece.Type, to.getSquareNotation(), ErrIllegalMove)
	}

	g.executeMove(piece, from, to)

	go g.broadcastState()

	return nil
}

// executeMove applies an already validated move. Caller holds the lock.
func (g *Game) executeMove(piece *Piece, from, to Position) {
	notation := g.getNotation(from, to)
	// Detached copy for the history; the live piece's position changes below.
	pieceRecord := *piece

	captured, err := g.state.Board.ApplyMove(from, to)
	if err != nil {
		// Unreachable after validation.
		panic(err)
	}
	if captured != nil {
		switch captured.Color {
		case White:
			g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, *captured)
		case Black:
			g.state.CapturedPieces.Black = append(g.state.CapturedPieces.Black, *captured)
		}
	}

	g.state.MoveHistory = append(g.state.MoveHistory, Ply{
		Piece:         &pieceRecord,
		From:          from,
		To:            to,
		CapturedPiece: captured,
		Notation:      notation,
	})
	g.state.LastMove = &Move{From: from, To: to}

	// Pass the turn and evaluate the opponent's situation.
	mover := g.state.ToMove
	opponent := mover.Opponent()
	g.state.ToMove = opponent

	switch {
	case IsCheckmate(g.state.Board, opponent):
		g.state.Status = StatusCheckmate
		g.state.StatusColor = &opponent
	case IsInCheck(g.state.Board, opponent):
		g.state.Status = StatusCheck
		g.state.StatusColor = &opponent
	default:
		g.state.Status = StatusOngoing
		g.state.StatusColor = nil
	}

	if mover == White {
		g.whiteClock.Stop()
		g.blackClock.Start()
	} else {
		g.blackClock.Stop()
		g.whiteClock.Start()
	}
	if g.state.Status == StatusCheckmate {
		g.whiteClock.Stop()
		g.blackClock.Stop()
	}
}

// getNotation renders the ply for history display. Rendered before the move
// is applied, since it reads the destination's occupancy.
func (g *Game) getNotation(from, to Position) string {
	piece := g.state.Board.Grid[from.Row][from.Col]
	prefix := piece.Type.getPieceNotation()
	capture := ""
	fileSpecifier := ""
	if g.state.Board.Grid[to.Row][to.Col] != nil {
		capture = "x"
		if piece.Type == Pawn {
			fileSpecifier = from.getFileNotation()
		}
	}
	return fmt.Sprintf("%s%s%s%s", prefix, fileSpecifier, capture, to.getSquareNotation())
}

func containsPosition(positions []Position, pos Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// Keep the healthy connection, reject the duplicate.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()
	log.Printf("registered connection for client %s on game %s", clientID, g.ID)

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, clientID)
}

// broadcastState pushes the current state to every attached connection.
func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.snapshotState()
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("failed to marshal game state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for clientID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("failed to send state to client %s: %v", clientID, err)
			delete(g.connections.connections, clientID)
		}
	}
}
