package board

import "testing"

func TestCheckmateCorneredGeneral(t *testing.T) {
	// Red general cornered at (0,3): checked along the file by one black
	// chariot, with its only other palace square covered by a second.
	p, _, err := FromFEN("4k4/9/9/9/9/3rr4/9/9/9/3K5 w")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Position:")
	t.Log(p.ToFEN(Red))

	inCheck := IsInCheck(p, Red)
	t.Log("InCheck:", inCheck)
	if !inCheck {
		t.Fatal("expected Red to be in check")
	}

	legal := GenerateLegalMoves(p, Red)
	t.Log("Red legal moves:", legal.Len())
	for i := 0; i < legal.Len(); i++ {
		t.Log("  move:", legal.Get(i))
	}

	if legal.Len() != 0 {
		t.Error("expected no legal moves (checkmate)")
	}
}

func TestNotCheckmateGeneralCanCapture(t *testing.T) {
	// The attacking chariot sits adjacent with no support: the general can
	// simply capture it.
	p, _, err := FromFEN("4k4/9/9/9/9/9/9/9/3r5/3K5 w")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Position:")
	t.Log(p.ToFEN(Red))
	t.Log("InCheck:", IsInCheck(p, Red))

	legal := GenerateLegalMoves(p, Red)
	t.Log("Red legal moves:", legal.Len())
	for i := 0; i < legal.Len(); i++ {
		t.Log("  move:", legal.Get(i))
	}

	if legal.Len() == 0 {
		t.Error("expected the general to have at least one legal move (capturing the unsupported chariot)")
	}
}

func TestNotCheckmateBlockAvailable(t *testing.T) {
	// The red chariot at (3,3) already stands between the black chariot and
	// the red general on file 3, so Red is not in check and can move.
	p, _, err := FromFEN("4k4/9/9/9/9/3r5/3R5/9/9/3K5 w")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	legal := GenerateLegalMoves(p, Red)
	t.Log("Red legal moves:", legal.Len())
	for i := 0; i < legal.Len(); i++ {
		t.Log("  move:", legal.Get(i))
	}

	if legal.Len() == 0 {
		t.Error("expected at least one legal move; the red chariot already blocks the file, so the general and the chariot still have moves")
	}
}

func TestStalemateNotInCheckButNoLegalMoves(t *testing.T) {
	// Black's general at (9,4) has its three palace exits each covered by
	// a red horse, but nothing currently attacks the general's own square.
	// Xiangqi's game layer (unlike chess) treats this as a loss for Black,
	// not a draw; this test only establishes the underlying legality facts.
	p, _, err := FromFEN("4k4/1N5N1/9/3N5/9/9/9/9/9/3K5 b")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	inCheck := IsInCheck(p, Black)
	t.Log("Black in check:", inCheck)
	if inCheck {
		t.Fatal("expected Black not to be in check")
	}

	legal := GenerateLegalMoves(p, Black)
	t.Log("Black legal moves:", legal.Len())
	for i := 0; i < legal.Len(); i++ {
		t.Log("  move:", legal.Get(i))
	}
	if legal.Len() != 0 {
		t.Error("expected no legal moves for Black (stalemate)")
	}
}
