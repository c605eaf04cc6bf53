package board

import "testing"

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	p := NewPosition()
	ml := GenerateMoves(p, Red, OrderingHints{})
	if ml.Len() != 44 {
		t.Errorf("pseudo-legal move count from the starting position = %d, want 44", ml.Len())
	}
}

func TestGenerateCapturesOnlyReturnsCaptures(t *testing.T) {
	p, turn, err := FromFEN("4k4/9/9/9/9/4p4/4R4/9/9/4K4 w")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	ml := GenerateCaptures(p, turn, OrderingHints{})
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if p.PieceAt(m.To().Square()).IsNone() {
			t.Errorf("capture-only generation produced a quiet move: %v", m)
		}
	}
	if ml.Len() == 0 {
		t.Error("expected at least one capture (chariot takes the soldier)")
	}
}

func TestMovesAreSortedDescendingByScore(t *testing.T) {
	p := NewPosition()
	hints := OrderingHints{HashMove: Move{FromRow: 2, FromCol: 1, ToRow: 2, ToCol: 4}}
	ml := GenerateMoves(p, Red, hints)
	for i := 1; i < ml.Len(); i++ {
		if ml.Get(i).Score > ml.Get(i-1).Score {
			t.Fatalf("move list not sorted descending at index %d: %d > %d", i, ml.Get(i).Score, ml.Get(i-1).Score)
		}
	}
	if ml.Get(0).Score != ScoreHashMove {
		t.Errorf("top move score = %d, want the hash-move score %d", ml.Get(0).Score, ScoreHashMove)
	}
}

func TestCaptureOrderingPrefersHigherValueVictim(t *testing.T) {
	// Red chariot at (4,4) can capture a black chariot along its rank at
	// (4,1), and a black horse along its file at (7,4) — both unobstructed.
	p, turn, err := FromFEN("4k4/9/4n4/9/9/1r2R4/9/9/9/4K4 w")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	ml := GenerateCaptures(p, turn, OrderingHints{})
	var chariotCaptureScore, horseCaptureScore int32 = -1, -1
	chariotTarget := NewSquare(4, 1)
	horseTarget := NewSquare(7, 4)
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		switch m.To().Square() {
		case chariotTarget:
			chariotCaptureScore = m.Score
		case horseTarget:
			horseCaptureScore = m.Score
		}
	}
	if chariotCaptureScore < 0 || horseCaptureScore < 0 {
		t.Fatal("expected both captures to be generated")
	}
	if chariotCaptureScore <= horseCaptureScore {
		t.Errorf("capturing the chariot (score %d) should outrank capturing the horse (score %d)", chariotCaptureScore, horseCaptureScore)
	}
}

func TestHasAnyLegalMoveStartingPosition(t *testing.T) {
	p := NewPosition()
	if !HasAnyLegalMove(p, Red) {
		t.Error("starting position should have legal moves for Red")
	}
}

func TestHasAnyLegalMoveFalseWhenCheckmated(t *testing.T) {
	// Red general cornered at (0,3): checked by a chariot on its file, and
	// its only other palace move is covered by a second chariot.
	p, _, err := FromFEN("4k4/9/9/9/9/3rr4/9/9/9/3K5 w")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !IsInCheck(p, Red) {
		t.Fatal("setup error: Red should already be in check")
	}
	if HasAnyLegalMove(p, Red) {
		t.Error("expected no legal moves for a mated general with no blockers or captures available")
	}
}

func TestGenerateLegalMovesFiltersSelfCheck(t *testing.T) {
	p, turn, err := FromFEN("4k4/4r4/9/9/9/9/9/4R4/9/4K4 w")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	legal := GenerateLegalMoves(p, turn)
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From().Col == 4 && m.From().Row == 2 && m.To().Col != 4 {
			t.Errorf("moving the pinned chariot off its file should be illegal, got %v", m)
		}
	}
}
