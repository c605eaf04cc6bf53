package board

import "errors"

// MoveError is the rule-level failure taxonomy: every value a move
// validation can return, distinguishing geometric violations from the
// self-check / repetition constraints layered on top.
var (
	ErrOutOfBounds              = errors.New("board: move out of bounds")
	ErrNoPieceAtSource          = errors.New("board: no piece at source square")
	ErrNotYourTurn              = errors.New("board: piece does not belong to the side to move")
	ErrInvalidMovePattern       = errors.New("board: move does not match the piece's movement pattern")
	ErrBlockedPath              = errors.New("board: path is blocked")
	ErrTargetOccupiedByFriendly = errors.New("board: target square holds a friendly piece")
	ErrPalaceRestriction        = errors.New("board: move would leave the palace")
	ErrRiverRestriction         = errors.New("board: move would cross the river illegally")
	ErrSelfCheck                = errors.New("board: move leaves the mover in check")
	ErrThreeFoldRepetition      = errors.New("board: move would cause a third repetition")
)

// IsValidMove checks full legality: geometric pattern, ownership, and
// (applying the move) freedom from self-check and flying-general.
func IsValidMove(p *Position, from, to Coordinate, turn Color) error {
	if err := validatePieceLogic(p, from, to, turn); err != nil {
		return err
	}

	sim := p.Copy()
	mv := Move{FromRow: int8(from.Row), FromCol: int8(from.Col), ToRow: int8(to.Row), ToCol: int8(to.Col)}
	sim.ApplyMove(mv, turn)

	if IsInCheck(sim, turn) {
		return ErrSelfCheck
	}
	if IsFlyingGeneral(sim) {
		return ErrSelfCheck
	}
	return nil
}

func validatePieceLogic(p *Position, from, to Coordinate, turn Color) error {
	if !InBounds(from.Row, from.Col) || !InBounds(to.Row, to.Col) {
		return ErrOutOfBounds
	}
	pc := p.PieceAt(from.Square())
	if pc.IsNone() {
		return ErrNoPieceAtSource
	}
	if pc.Color != turn {
		return ErrNotYourTurn
	}
	if from == to {
		return ErrInvalidMovePattern
	}
	target := p.PieceAt(to.Square())
	if !target.IsNone() && target.Color == turn {
		return ErrTargetOccupiedByFriendly
	}

	switch pc.Type {
	case General:
		return validateGeneral(p, from, to)
	case Advisor:
		return validateAdvisor(from, to)
	case Elephant:
		return validateElephant(p, from, to)
	case Horse:
		return validateHorse(p, from, to)
	case Chariot:
		return validateChariot(p, from, to)
	case Cannon:
		return validateCannon(p, from, to, target)
	case Soldier:
		return validateSoldier(from, to, turn)
	}
	return ErrInvalidMovePattern
}

func validateGeneral(p *Position, from, to Coordinate) error {
	dr, dc := absInt(to.Row-from.Row), absInt(to.Col-from.Col)
	if dr+dc != 1 {
		return ErrInvalidMovePattern
	}
	if !inPalace(to.Row, to.Col) {
		return ErrPalaceRestriction
	}
	return nil
}

func validateAdvisor(from, to Coordinate) error {
	dr, dc := absInt(to.Row-from.Row), absInt(to.Col-from.Col)
	if dr != 1 || dc != 1 {
		return ErrInvalidMovePattern
	}
	if !inPalace(to.Row, to.Col) {
		return ErrPalaceRestriction
	}
	return nil
}

func validateElephant(p *Position, from, to Coordinate) error {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if absInt(dr) != 2 || absInt(dc) != 2 {
		return ErrInvalidMovePattern
	}
	if !sameRiverSide(from.Row, to.Row) {
		return ErrRiverRestriction
	}
	eyeRow, eyeCol := from.Row+dr/2, from.Col+dc/2
	if !p.IsEmpty(NewSquare(eyeRow, eyeCol)) {
		return ErrBlockedPath
	}
	return nil
}

func validateHorse(p *Position, from, to Coordinate) error {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	adr, adc := absInt(dr), absInt(dc)
	if !((adr == 2 && adc == 1) || (adr == 1 && adc == 2)) {
		return ErrInvalidMovePattern
	}
	var legRow, legCol int
	if adr == 2 {
		legRow, legCol = from.Row+dr/2, from.Col
	} else {
		legRow, legCol = from.Row, from.Col+dc/2
	}
	if !p.IsEmpty(NewSquare(legRow, legCol)) {
		return ErrBlockedPath
	}
	return nil
}

func validateChariot(p *Position, from, to Coordinate) error {
	if from.Row != to.Row && from.Col != to.Col {
		return ErrInvalidMovePattern
	}
	if countObstacles(p, from, to) != 0 {
		return ErrBlockedPath
	}
	return nil
}

func validateCannon(p *Position, from, to Coordinate, target Piece) error {
	if from.Row != to.Row && from.Col != to.Col {
		return ErrInvalidMovePattern
	}
	obstacles := countObstacles(p, from, to)
	if target.IsNone() {
		if obstacles != 0 {
			return ErrBlockedPath
		}
	} else if obstacles != 1 {
		return ErrBlockedPath
	}
	return nil
}

func validateSoldier(from, to Coordinate, turn Color) error {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	forward := 1
	if turn == Black {
		forward = -1
	}
	if dr == -forward {
		return ErrInvalidMovePattern
	}
	if absInt(dr)+absInt(dc) != 1 {
		return ErrInvalidMovePattern
	}
	crossed := from.Row > 4
	if turn == Black {
		crossed = from.Row < 5
	}
	if dc != 0 && !crossed {
		return ErrInvalidMovePattern
	}
	return nil
}

// countObstacles counts pieces strictly between from and to along a rank
// or file (from and to must already share one axis).
func countObstacles(p *Position, from, to Coordinate) int {
	count := 0
	if from.Row == to.Row {
		lo, hi := from.Col, to.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			if !p.IsEmpty(NewSquare(from.Row, c)) {
				count++
			}
		}
		return count
	}
	lo, hi := from.Row, to.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if !p.IsEmpty(NewSquare(r, from.Col)) {
			count++
		}
	}
	return count
}

// IsInCheck reports whether color's general is attacked. A missing general
// (an invalid intermediate state) is treated as being in check.
func IsInCheck(p *Position, color Color) bool {
	genSq := p.GeneralSquare(color)
	if genSq == NoSquare || genSq >= 90 {
		return true
	}
	row, col := genSq.Row(), genSq.Col()
	enemy := color.Other()

	enemyRooks := p.PieceBitboard(enemy, Chariot)
	rankAttack := RookRankAttacks(col, p.OccupiedRows[row])
	fileAttack := RookFileAttacks(row, p.OccupiedCols[col])
	if bitsToBitboardRow(row, rankAttack).And(enemyRooks).PopCount() > 0 {
		return true
	}
	if bitsToBitboardCol(col, fileAttack).And(enemyRooks).PopCount() > 0 {
		return true
	}

	enemyCannons := p.PieceBitboard(enemy, Cannon)
	cRank := CannonRankAttacks(col, p.OccupiedRows[row])
	cFile := CannonFileAttacks(row, p.OccupiedCols[col])
	if bitsToBitboardRow(row, cRank).And(enemyCannons).PopCount() > 0 {
		return true
	}
	if bitsToBitboardCol(col, cFile).And(enemyCannons).PopCount() > 0 {
		return true
	}

	enemyHorses := p.PieceBitboard(enemy, Horse)
	for _, jump := range inverseHorseJumps(row, col) {
		if !InBounds(jump.legRow, jump.legCol) || !InBounds(jump.fromRow, jump.fromCol) {
			continue
		}
		if !p.IsEmpty(NewSquare(jump.legRow, jump.legCol)) {
			continue
		}
		if enemyHorses.IsSet(NewSquare(jump.fromRow, jump.fromCol)) {
			return true
		}
	}

	enemySoldiers := p.PieceBitboard(enemy, Soldier)
	backRow := row - 1
	if enemy == Black {
		backRow = row + 1
	}
	if InBounds(backRow, col) && enemySoldiers.IsSet(NewSquare(backRow, col)) {
		return true
	}
	for _, dc := range [2]int{1, -1} {
		if InBounds(row, col+dc) && enemySoldiers.IsSet(NewSquare(row, col+dc)) {
			return true
		}
	}

	return false
}

// horseAttackOrigin describes a square a horse could stand on to attack a
// given target, along with the leg square that must be clear.
type horseAttackOrigin struct {
	fromRow, fromCol, legRow, legCol int
}

// inverseHorseJumps enumerates the origin squares from which a horse could
// jump to (row, col), mirroring horseDeltas in reverse.
func inverseHorseJumps(row, col int) []horseAttackOrigin {
	origins := make([]horseAttackOrigin, 0, 8)
	for _, d := range horseDeltas {
		fromRow, fromCol := row-d.dr, col-d.dc
		legRow, legCol := fromRow+d.legDr, fromCol+d.legDc
		origins = append(origins, horseAttackOrigin{fromRow: fromRow, fromCol: fromCol, legRow: legRow, legCol: legCol})
	}
	return origins
}

// bitsToBitboardRow expands a rank attack mask (bit i = column i) back to
// a full-board bitboard at the given row.
func bitsToBitboardRow(row int, mask uint16) Bitboard {
	var bb Bitboard
	for col := 0; col < 9; col++ {
		if mask&(1<<uint(col)) != 0 {
			bb = bb.Set(NewSquare(row, col))
		}
	}
	return bb
}

// bitsToBitboardCol expands a file attack mask (bit i = row i) back to a
// full-board bitboard at the given column.
func bitsToBitboardCol(col int, mask uint16) Bitboard {
	var bb Bitboard
	for row := 0; row < 10; row++ {
		if mask&(1<<uint(row)) != 0 {
			bb = bb.Set(NewSquare(row, col))
		}
	}
	return bb
}

// IsFlyingGeneral reports whether the two generals face each other on an
// open file — a check-equivalent illegal state.
func IsFlyingGeneral(p *Position) bool {
	redSq := p.GeneralSquare(Red)
	blackSq := p.GeneralSquare(Black)
	if redSq == NoSquare || blackSq == NoSquare || redSq >= 90 || blackSq >= 90 {
		return false
	}
	if redSq.Col() != blackSq.Col() {
		return false
	}
	col := redSq.Col()
	lo, hi := redSq.Row(), blackSq.Row()
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo == 1 {
		return true
	}
	mask := uint16((1<<uint(hi))-1) ^ uint16((1<<uint(lo+1))-1)
	return p.OccupiedCols[col]&mask == 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
