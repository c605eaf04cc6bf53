// Package engine implements the Xiangqi search engine.
package engine

import (
	"xiangqi/internal/board"
)

// Weights bundles every evaluator knob in the engine configuration. All
// fields default to the values in the external configuration table; a zero
// Weights is not meaningful and should never be used directly.
type Weights struct {
	MobilityRook, MobilityCannon, MobilityHorse int32

	BonusConnectedAdvisors, BonusConnectedElephants int32

	KingExposedFilePenalty, KingExposedCannonPenalty int32
}

// DefaultWeights returns the evaluator's stock configuration.
func DefaultWeights() Weights {
	return Weights{
		MobilityRook:             4,
		MobilityCannon:           3,
		MobilityHorse:            2,
		BonusConnectedAdvisors:   10,
		BonusConnectedElephants:  10,
		KingExposedFilePenalty:   40,
		KingExposedCannonPenalty: 60,
	}
}

// centerElephantSquare is each side's central elephant square, on the
// middle file at the front edge of its palace; present, it completes the
// elephant's defensive formation for that side.
var centerElephantSquare = [2]board.Square{
	board.Red:   board.NewSquare(2, 4),
	board.Black: board.NewSquare(7, 4),
}

// Evaluate returns a signed centipawn score from Red's perspective: material
// and piece-square values come straight from the position's incrementally
// maintained sums, everything else is computed on demand.
func Evaluate(pos *board.Position, w Weights) int32 {
	score := (pos.RedMaterial + pos.RedPST) - (pos.BlackMaterial + pos.BlackPST)

	score += mobilityScore(pos, board.Red, w) - mobilityScore(pos, board.Black, w)
	score += structureScore(pos, board.Red, w) - structureScore(pos, board.Black, w)
	score -= kingSafetyPenalty(pos, board.Red, w)
	score += kingSafetyPenalty(pos, board.Black, w)

	return score
}

func mobilityScore(pos *board.Position, c board.Color, w Weights) int32 {
	var total int32
	own := pos.ColorBitboard(c)

	pos.PieceBitboard(c, board.Chariot).ForEach(func(sq board.Square) {
		rank := board.RookRankAttacks(sq.Col(), pos.OccupiedRows[sq.Row()])
		file := board.RookFileAttacks(sq.Row(), pos.OccupiedCols[sq.Col()])
		reach := rankMaskToBitboard(sq.Row(), rank).Or(fileMaskToBitboard(sq.Col(), file)).AndNot(own)
		total += int32(reach.PopCount()) * w.MobilityRook
	})

	pos.PieceBitboard(c, board.Cannon).ForEach(func(sq board.Square) {
		rank := board.CannonRankAttacks(sq.Col(), pos.OccupiedRows[sq.Row()])
		file := board.CannonFileAttacks(sq.Row(), pos.OccupiedCols[sq.Col()])
		reach := rankMaskToBitboard(sq.Row(), rank).Or(fileMaskToBitboard(sq.Col(), file)).AndNot(own)
		total += int32(reach.PopCount()) * w.MobilityCannon
	})

	pos.PieceBitboard(c, board.Horse).ForEach(func(sq board.Square) {
		total += int32(board.HorseMobility(pos, sq)) * w.MobilityHorse
	})

	return total
}

func rankMaskToBitboard(row int, mask uint16) board.Bitboard {
	var bb board.Bitboard
	for col := 0; col < 9; col++ {
		if mask&(1<<uint(col)) != 0 {
			bb = bb.Set(board.NewSquare(row, col))
		}
	}
	return bb
}

func fileMaskToBitboard(col int, mask uint16) board.Bitboard {
	var bb board.Bitboard
	for row := 0; row < 10; row++ {
		if mask&(1<<uint(row)) != 0 {
			bb = bb.Set(board.NewSquare(row, col))
		}
	}
	return bb
}

// structureScore rewards two intact formations: both advisors still on the
// board, and the flank elephant that guards the central eye.
func structureScore(pos *board.Position, c board.Color, w Weights) int32 {
	var bonus int32
	if pos.PieceBitboard(c, board.Advisor).PopCount() == 2 {
		bonus += w.BonusConnectedAdvisors
	}
	if pos.PieceBitboard(c, board.Elephant).IsSet(centerElephantSquare[c]) {
		bonus += w.BonusConnectedElephants
	}
	return bonus
}

// kingSafetyPenalty returns a non-negative penalty for c's own king safety:
// an enemy chariot seeing the general with no blockers, or an enemy cannon
// sharing a line with at most one blocker (an "empty cannon" mate threat at
// zero, a live check at one).
func kingSafetyPenalty(pos *board.Position, c board.Color, w Weights) int32 {
	kingSq := pos.GeneralSquare(c)
	if kingSq == board.NoSquare {
		return 0
	}
	kr, kc := kingSq.Row(), kingSq.Col()
	enemy := c.Other()

	var penalty int32
	pos.PieceBitboard(enemy, board.Chariot).ForEach(func(sq board.Square) {
		if sq.Row() != kr && sq.Col() != kc {
			return
		}
		if blockersBetween(pos, kr, kc, sq.Row(), sq.Col()) == 0 {
			penalty += w.KingExposedFilePenalty
		}
	})

	pos.PieceBitboard(enemy, board.Cannon).ForEach(func(sq board.Square) {
		if sq.Row() != kr && sq.Col() != kc {
			return
		}
		if blockersBetween(pos, kr, kc, sq.Row(), sq.Col()) <= 1 {
			penalty += w.KingExposedCannonPenalty
		}
	})

	return penalty
}

// blockersBetween counts occupied squares strictly between two squares that
// share a rank or a file. Callers must already know the squares are aligned.
func blockersBetween(pos *board.Position, r1, c1, r2, c2 int) int {
	count := 0
	if r1 == r2 {
		lo, hi := c1, c2
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			if !pos.IsEmpty(board.NewSquare(r1, c)) {
				count++
			}
		}
		return count
	}
	lo, hi := r1, r2
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if !pos.IsEmpty(board.NewSquare(r, c1)) {
			count++
		}
	}
	return count
}
