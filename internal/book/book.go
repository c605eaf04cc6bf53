// Package book implements a small opening book: a Zobrist hash maps to a
// weighted set of suggested moves, loaded from a compact binary file.
package book

import (
	"encoding/binary"
	"io"
	"math/rand"
	"os"

	"xiangqi/internal/board"
	"xiangqi/internal/xlog"
)

var log = xlog.MustGetLogger("book")

// recordSize is the on-disk width of one book record: 8-byte hash key,
// one packed from-square, one packed to-square, 2-byte weight.
const recordSize = 12

// BookEntry is one suggested move for a position, with its relative
// selection weight. From/To are packed square indices (row*9+col),
// matching board.Square's own encoding.
type BookEntry struct {
	From, To byte
	Weight   uint16
}

// Move converts the entry's packed squares into a board.Move.
func (e BookEntry) Move() board.Move {
	from := board.Square(e.From)
	to := board.Square(e.To)
	return board.Move{
		FromRow: int8(from.Row()), FromCol: int8(from.Col()),
		ToRow: int8(to.Row()), ToCol: int8(to.Col()),
	}
}

// Book maps a Zobrist hash to its candidate moves.
type Book struct {
	entries map[uint64][]BookEntry
}

// New returns an empty book.
func New() *Book {
	return &Book{entries: make(map[uint64][]BookEntry)}
}

// LoadBinaryFile opens path and loads it via LoadBinary.
func LoadBinaryFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("opening book: %v", err)
		return nil, err
	}
	defer f.Close()
	return LoadBinary(f)
}

// LoadBinary streams fixed 12-byte records from r: an 8-byte big-endian
// Zobrist key, a packed from-square, a packed to-square, and a 2-byte
// big-endian weight. Records are grouped by key.
func LoadBinary(r io.Reader) (*Book, error) {
	b := New()
	var rec [recordSize]byte

	for {
		_, err := io.ReadFull(r, rec[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Errorf("reading book record: %v", err)
			return nil, err
		}

		key := binary.BigEndian.Uint64(rec[0:8])
		entry := BookEntry{
			From:   rec[8],
			To:     rec[9],
			Weight: binary.BigEndian.Uint16(rec[10:12]),
		}
		b.entries[key] = append(b.entries[key], entry)
	}

	log.Infof("opening book loaded: %d positions", len(b.entries))
	return b, nil
}

// Probe returns a weighted-random move suggestion for hash, or
// (board.NoMove, false) if the book holds nothing for this position.
func (b *Book) Probe(hash uint64) (board.Move, bool) {
	if b == nil {
		return board.NoMove, false
	}
	entries, ok := b.entries[hash]
	if !ok || len(entries) == 0 {
		return board.NoMove, false
	}

	total := uint32(0)
	for _, e := range entries {
		total += uint32(e.Weight)
	}
	if total == 0 {
		return entries[0].Move(), true
	}

	r := rand.Uint32() % total
	cumulative := uint32(0)
	for _, e := range entries {
		cumulative += uint32(e.Weight)
		if r < cumulative {
			return e.Move(), true
		}
	}
	return entries[len(entries)-1].Move(), true
}

// Size returns the number of distinct positions the book holds moves for.
func (b *Book) Size() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
