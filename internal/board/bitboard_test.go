package board

import "testing"

func TestBitboardSetClearIsSet(t *testing.T) {
	var b Bitboard
	sq := NewSquare(5, 3)
	if b.IsSet(sq) {
		t.Fatal("fresh bitboard should have no bits set")
	}
	b = b.Set(sq)
	if !b.IsSet(sq) {
		t.Fatal("Set should mark the square")
	}
	b = b.Clear(sq)
	if b.IsSet(sq) {
		t.Fatal("Clear should unmark the square")
	}
}

func TestBitboardHighWordSquares(t *testing.T) {
	// Squares >= 64 exercise the high word.
	sq := NewSquare(9, 8) // index 89
	b := Bitboard{}.Set(sq)
	if !b.IsSet(sq) {
		t.Fatal("high-word square not set correctly")
	}
	if b.PopCount() != 1 {
		t.Errorf("PopCount = %d, want 1", b.PopCount())
	}
	if b.TrailingZeros() != 89 {
		t.Errorf("TrailingZeros = %d, want 89", b.TrailingZeros())
	}
}

func TestBitboardPopLSBDrainsAllBits(t *testing.T) {
	var b Bitboard
	squares := []Square{NewSquare(0, 0), NewSquare(3, 3), NewSquare(9, 8), NewSquare(6, 5)}
	for _, sq := range squares {
		b = b.Set(sq)
	}
	var drained []Square
	for !b.IsEmpty() {
		drained = append(drained, b.PopLSB())
	}
	if len(drained) != len(squares) {
		t.Fatalf("drained %d squares, want %d", len(drained), len(squares))
	}
	for i := 1; i < len(drained); i++ {
		if drained[i] <= drained[i-1] {
			t.Errorf("PopLSB should drain in ascending order, got %v then %v", drained[i-1], drained[i])
		}
	}
}

func TestBitboardBooleanOps(t *testing.T) {
	a := Bitboard{}.Set(NewSquare(1, 1)).Set(NewSquare(2, 2))
	b := Bitboard{}.Set(NewSquare(2, 2)).Set(NewSquare(3, 3))

	and := a.And(b)
	if and.PopCount() != 1 || !and.IsSet(NewSquare(2, 2)) {
		t.Error("And should keep only the shared bit")
	}

	or := a.Or(b)
	if or.PopCount() != 3 {
		t.Errorf("Or PopCount = %d, want 3", or.PopCount())
	}

	andNot := a.AndNot(b)
	if andNot.PopCount() != 1 || !andNot.IsSet(NewSquare(1, 1)) {
		t.Error("AndNot should remove bits present in the argument")
	}

	xor := a.Xor(b)
	if xor.PopCount() != 2 || xor.IsSet(NewSquare(2, 2)) {
		t.Error("Xor should clear bits common to both")
	}
}

func TestForEachVisitsEverySetSquare(t *testing.T) {
	var b Bitboard
	want := map[Square]bool{NewSquare(0, 0): true, NewSquare(5, 5): true, NewSquare(9, 8): true}
	for sq := range want {
		b = b.Set(sq)
	}
	got := map[Square]bool{}
	b.ForEach(func(sq Square) { got[sq] = true })
	if len(got) != len(want) {
		t.Fatalf("ForEach visited %d squares, want %d", len(got), len(want))
	}
	for sq := range want {
		if !got[sq] {
			t.Errorf("ForEach missed square %v", sq)
		}
	}
}
