package board

import "testing"

// perft counts leaf nodes at depth by full legal-move recursion, applying
// and undoing each move rather than relying on incremental legality
// filtering at every ply (a straightforward, if slower, correctness check).
func perft(p *Position, side Color, depth int) int64 {
	if depth == 0 {
		return 1
	}
	ml := GenerateMoves(p, side, OrderingHints{})
	var nodes int64
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		captured := p.ApplyMove(m, side)
		if !IsInCheck(p, side) && !IsFlyingGeneral(p) {
			nodes += perft(p, side.Other(), depth-1)
		}
		p.UndoMove(m, captured, side)
	}
	return nodes
}

func TestPerftStartingPositionDepth1(t *testing.T) {
	p := NewPosition()
	got := perft(p, Red, 1)
	if got != 44 {
		t.Errorf("perft(1) = %d, want 44", got)
	}
}

func TestPerftStartingPositionDepth2(t *testing.T) {
	p := NewPosition()
	got := perft(p, Red, 2)
	if got != 1920 {
		t.Errorf("perft(2) = %d, want 1920", got)
	}
}

func TestPerftPreservesBoardState(t *testing.T) {
	p := NewPosition()
	before := *p
	perft(p, Red, 2)
	if p.ZobristHash != before.ZobristHash {
		t.Error("perft should leave the board hash unchanged after applying and undoing every branch")
	}
	if p.RedMaterial != before.RedMaterial || p.BlackMaterial != before.BlackMaterial {
		t.Error("perft should leave material sums unchanged")
	}
	for sq := Square(0); sq < 90; sq++ {
		if p.Mailbox[sq] != before.Mailbox[sq] {
			t.Errorf("mailbox at %v changed after perft: got %v, want %v", sq, p.Mailbox[sq], before.Mailbox[sq])
		}
	}
}
