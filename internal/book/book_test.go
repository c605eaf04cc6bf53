package book

import (
	"bytes"
	"encoding/binary"
	"testing"

	"xiangqi/internal/board"
)

func TestBookLoadAndProbe(t *testing.T) {
	pos := board.NewPosition()
	key := pos.ZobristHash

	from := board.NewSquare(2, 1)
	to := board.NewSquare(2, 4)

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, key)
	buf.WriteByte(byte(from))
	buf.WriteByte(byte(to))
	binary.Write(&buf, binary.BigEndian, uint16(100))

	b, err := LoadBinary(&buf)
	if err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}
	if b.Size() != 1 {
		t.Errorf("expected book size 1, got %d", b.Size())
	}

	move, found := b.Probe(key)
	if !found {
		t.Fatal("expected to find move in book")
	}
	if move.From().Row != 2 || move.From().Col != 1 || move.To().Row != 2 || move.To().Col != 4 {
		t.Errorf("unexpected move decoded: %s", move)
	}
}

func TestBookMiss(t *testing.T) {
	b := New()
	_, found := b.Probe(0xdeadbeef)
	if found {
		t.Error("expected book miss on empty book")
	}
}

func TestBookWeightedProbeStaysWithinCandidates(t *testing.T) {
	key := uint64(12345)
	from1, to1 := board.NewSquare(0, 0), board.NewSquare(1, 0)
	from2, to2 := board.NewSquare(9, 8), board.NewSquare(8, 8)

	var buf bytes.Buffer
	for _, rec := range []struct {
		from, to board.Square
		weight   uint16
	}{
		{from1, to1, 10},
		{from2, to2, 1},
	} {
		binary.Write(&buf, binary.BigEndian, key)
		buf.WriteByte(byte(rec.from))
		buf.WriteByte(byte(rec.to))
		binary.Write(&buf, binary.BigEndian, rec.weight)
	}

	b, err := LoadBinary(&buf)
	if err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}
	if b.Size() != 1 {
		t.Fatalf("expected one distinct position, got %d", b.Size())
	}

	for i := 0; i < 50; i++ {
		m, found := b.Probe(key)
		if !found {
			t.Fatal("expected a move")
		}
		matchesFirst := m.From().Row == from1.Row() && m.From().Col == from1.Col() && m.To().Row == to1.Row() && m.To().Col == to1.Col()
		matchesSecond := m.From().Row == from2.Row() && m.From().Col == from2.Col() && m.To().Row == to2.Row() && m.To().Col == to2.Col()
		if !matchesFirst && !matchesSecond {
			t.Fatalf("probe returned a move matching neither candidate: %s", m)
		}
	}
}
