package board

import "testing"

func TestZobristKeysAreDistinct(t *testing.T) {
	seen := map[uint64]bool{}
	for pt := PieceType(0); pt < 7; pt++ {
		for _, c := range []Color{Red, Black} {
			for row := 0; row < 10; row++ {
				for col := 0; col < 9; col++ {
					k := ZobristPiece(pt, c, row, col)
					if seen[k] {
						t.Fatalf("duplicate zobrist key for (%v, %v, %d, %d)", pt, c, row, col)
					}
					seen[k] = true
				}
			}
		}
	}
	if seen[ZobristSideToMove()] {
		t.Fatal("side-to-move key collides with a piece key")
	}
}

func TestZobristDeterministicAcrossInit(t *testing.T) {
	// Re-running the PRNG with the fixed seed must reproduce the same
	// stream, since independent processes need to agree on hashes.
	rng := newPRNG(zobristSeed)
	first := rng.next()
	if first != zobristPiece[0][0][0][0] {
		t.Errorf("PRNG replay diverged from package-level table: got %x, want %x", first, zobristPiece[0][0][0][0])
	}
}

func TestCalculateHashMatchesIncrementalUpdates(t *testing.T) {
	p := NewPosition()
	want := p.calculateHash()
	if p.ZobristHash != want {
		t.Fatalf("initial hash = %x, want freshly computed %x", p.ZobristHash, want)
	}

	// calculateHash only folds in piece placement, not side-to-move, so
	// after one ApplyMove the incrementally maintained hash should equal
	// a fresh placement scan XORed once with the side-to-move key.
	m := Move{FromRow: 3, FromCol: 0, ToRow: 4, ToCol: 0}
	p.ApplyMove(m, Red)
	if p.ZobristHash != p.calculateHash()^ZobristSideToMove() {
		t.Error("incremental hash diverged from a full recomputation after a move")
	}
}
