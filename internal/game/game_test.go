package game

import (
	"testing"

	"xiangqi/internal/board"
)

func TestMakeMoveAdvancesTurnAndHistory(t *testing.T) {
	g := New()
	initialFEN := g.Position.ToFEN(g.Turn)

	// Red's central soldier: (3,4) -> (4,4)
	if err := g.MakeMove(board.Coordinate{Row: 3, Col: 4}, board.Coordinate{Row: 4, Col: 4}); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}

	if len(g.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(g.History))
	}
	if g.Turn != board.Black {
		t.Errorf("turn = %v, want Black", g.Turn)
	}
	if !g.Position.IsEmpty(board.NewSquare(3, 4)) {
		t.Error("source square still occupied")
	}
	if g.Position.IsEmpty(board.NewSquare(4, 4)) {
		t.Error("destination square not occupied")
	}

	if !g.UndoMove() {
		t.Fatal("UndoMove returned false")
	}
	if len(g.History) != 0 {
		t.Errorf("history length after undo = %d, want 0", len(g.History))
	}
	if g.Turn != board.Red {
		t.Errorf("turn after undo = %v, want Red", g.Turn)
	}
	if g.Position.ToFEN(g.Turn) != initialFEN {
		t.Error("position not restored to initial FEN after undo")
	}
}

func TestUndoCaptureRestoresCapturedPiece(t *testing.T) {
	g := New()

	moves := []struct{ from, to board.Coordinate }{
		{board.Coordinate{Row: 3, Col: 4}, board.Coordinate{Row: 4, Col: 4}},
		{board.Coordinate{Row: 6, Col: 4}, board.Coordinate{Row: 5, Col: 4}},
		{board.Coordinate{Row: 4, Col: 4}, board.Coordinate{Row: 5, Col: 4}},
	}
	for _, m := range moves {
		if err := g.MakeMove(m.from, m.to); err != nil {
			t.Fatalf("MakeMove(%v -> %v): %v", m.from, m.to, err)
		}
	}

	last := g.History[len(g.History)-1]
	if last.Captured.IsNone() {
		t.Fatal("expected a capture on the third move")
	}
	if last.Captured.Type != board.Soldier {
		t.Errorf("captured piece type = %v, want Soldier", last.Captured.Type)
	}

	if !g.UndoMove() {
		t.Fatal("UndoMove returned false")
	}
	if len(g.History) != 2 {
		t.Fatalf("history length after undo = %d, want 2", len(g.History))
	}
	if g.Position.IsEmpty(board.NewSquare(5, 4)) {
		t.Error("captured black soldier was not restored")
	}
	capturedBack := g.Position.PieceAt(board.NewSquare(5, 4))
	if capturedBack.Color != board.Black || capturedBack.Type != board.Soldier {
		t.Errorf("restored piece = %v, want black soldier", capturedBack)
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := New()
	err := g.MakeMove(board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 5, Col: 5})
	if err == nil {
		t.Fatal("expected an error for an illegal chariot move across the river mid-board")
	}
	if len(g.History) != 0 {
		t.Errorf("illegal move must not be recorded, history length = %d", len(g.History))
	}
}

func TestMakeMoveAfterGameOverIsRejected(t *testing.T) {
	g := New()
	g.Status = Checkmate
	err := g.MakeMove(board.Coordinate{Row: 3, Col: 4}, board.Coordinate{Row: 4, Col: 4})
	if err != ErrGameOver {
		t.Errorf("err = %v, want ErrGameOver", err)
	}
}
