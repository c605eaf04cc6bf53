// Package board implements Xiangqi board representation using 128-bit bitboards.
package board

import (
	"fmt"
	"math/bits"
)

// Bitboard represents the 90 squares of a Xiangqi board as a 128-bit set,
// since 90 squares exceed a native 64-bit word. It is a two-word struct
// with carry-free bitwise operations; all arithmetic stays within the
// low 90 bits (lo holds squares 0-63, hi holds squares 64-89).
type Bitboard struct {
	lo, hi uint64
}

// Empty is the zero bitboard.
var Empty = Bitboard{}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	if sq < 64 {
		return Bitboard{lo: 1 << uint(sq)}
	}
	return Bitboard{hi: 1 << uint(sq-64)}
}

// Set returns the bitboard with sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b.Or(SquareBB(sq))
}

// Clear returns the bitboard with sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	m := SquareBB(sq)
	return Bitboard{lo: b.lo &^ m.lo, hi: b.hi &^ m.hi}
}

// IsSet reports whether sq is set.
func (b Bitboard) IsSet(sq Square) bool {
	m := SquareBB(sq)
	return b.lo&m.lo != 0 || b.hi&m.hi != 0
}

// Or returns the bitwise union.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo | o.lo, hi: b.hi | o.hi}
}

// And returns the bitwise intersection.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo & o.lo, hi: b.hi & o.hi}
}

// AndNot returns b with o's bits cleared.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo &^ o.lo, hi: b.hi &^ o.hi}
}

// Xor returns the bitwise exclusive-or.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo ^ o.lo, hi: b.hi ^ o.hi}
}

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// TrailingZeros returns the index of the lowest set bit, or 90 if empty.
// This is the critical iterator primitive for the 128-bit word: every
// bit-scan loop over a bitboard is built from this plus PopLSB.
func (b Bitboard) TrailingZeros() int {
	if b.lo != 0 {
		return bits.TrailingZeros64(b.lo)
	}
	if b.hi != 0 {
		return 64 + bits.TrailingZeros64(b.hi)
	}
	return 90
}

// PopLSB clears and returns the lowest set square, or NoSquare if empty.
func (b *Bitboard) PopLSB() Square {
	if b.IsEmpty() {
		return NoSquare
	}
	sq := Square(b.TrailingZeros())
	*b = b.Clear(sq)
	return sq
}

// ForEach calls f once per set square, lowest index first.
func (b Bitboard) ForEach(f func(Square)) {
	for !b.IsEmpty() {
		f(b.PopLSB())
	}
}

// String renders the bitboard as a 10x9 grid for debugging.
func (b Bitboard) String() string {
	s := ""
	for row := 9; row >= 0; row-- {
		s += fmt.Sprintf("%d ", row)
		for col := 0; col < 9; col++ {
			if b.IsSet(NewSquare(row, col)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return s
}
