package service

import (
	"errors"
	"testing"

	"github.com/hmoretti/chess-backend/internal/model"
)

func TestGameLifecycle(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if gameID == "" {
		t.Fatal("expected a game ID")
	}

	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.ToMove != model.White || state.Status != model.StatusOngoing {
		t.Fatalf("unexpected initial state: %s to move, status %s", state.ToMove, state.Status)
	}

	move := model.Move{
		From: model.Position{Row: 1, Col: 4},
		To:   model.Position{Row: 3, Col: 4},
	}
	if err := gs.HandleMove(gameID, move); err != nil {
		t.Fatalf("handle move: %v", err)
	}

	state, err = gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("get state after move: %v", err)
	}
	if state.ToMove != model.Black {
		t.Fatalf("expected black to move, got %s", state.ToMove)
	}
	if len(state.MoveHistory) != 1 {
		t.Fatalf("expected one ply in history, got %d", len(state.MoveHistory))
	}
}

func TestRejectionsSurfaceTypedErrors(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("create game: %v", err)
	}

	illegal := model.Move{
		From: model.Position{Row: 0, Col: 0},
		To:   model.Position{Row: 5, Col: 0},
	}
	if err := gs.HandleMove(gameID, illegal); !errors.Is(err, model.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
}

func TestUnknownGame(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	if _, err := gs.GetGameState("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	move := model.Move{From: model.Position{Row: 1, Col: 0}, To: model.Position{Row: 2, Col: 0}}
	if err := gs.HandleMove("missing", move); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
