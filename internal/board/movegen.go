package board

// Search-time ordering scores, defaulting to the values the engine
// configuration can override (see engine.Config).
const (
	ScoreHashMove    = 2_000_000
	ScoreCaptureBase = 900_000
	ScoreKillerMove  = 1_200_000
	ScoreHistoryMax  = 800_000
)

// OrderingHints bundles the optional inputs that influence move scoring.
// A zero value (nil tables; zero-valued hash move and killers, which match
// no generated move) degrades gracefully to material-only capture ordering
// using the package's default scores.
type OrderingHints struct {
	HashMove   Move
	Killers    [2]Move           // two killer slots for the current ply
	History    *[90][90]int32
	CaptureVal func(PieceType) int32 // piece value lookup, overridable by engine config

	// The four fields below override ScoreHashMove/ScoreCaptureBase/
	// ScoreKillerMove/ScoreHistoryMax when nonzero; left zero, scoreMoves
	// falls back to the package defaults.
	HashMoveScore    int32
	CaptureBaseScore int32
	KillerMoveScore  int32
	HistoryMaxScore  int32
}

// GenerateMoves emits every pseudo-legal move for side, scored for search
// ordering and sorted descending. Legality against self-check and the
// flying-general rule is the caller's responsibility (apply, test, undo).
func GenerateMoves(p *Position, side Color, hints OrderingHints) *MoveList {
	ml := &MoveList{}
	generatePseudoLegal(p, side, ml, false)
	scoreMoves(p, ml, hints)
	ml.SortDescending()
	return ml
}

// GenerateCaptures emits only pseudo-legal captures, for quiescence search.
func GenerateCaptures(p *Position, side Color, hints OrderingHints) *MoveList {
	ml := &MoveList{}
	generatePseudoLegal(p, side, ml, true)
	scoreMoves(p, ml, hints)
	ml.SortDescending()
	return ml
}

func generatePseudoLegal(p *Position, side Color, ml *MoveList, capturesOnly bool) {
	own := p.ColorBitboard(side)

	genSliding := func(pt PieceType, cannon bool) {
		bb := p.PieceBitboard(side, pt)
		bb.ForEach(func(from Square) {
			row, col := from.Row(), from.Col()
			var mask uint16
			if cannon {
				mask = CannonRankAttacks(col, p.OccupiedRows[row])
			} else {
				mask = RookRankAttacks(col, p.OccupiedRows[row])
			}
			for c := 0; c < 9; c++ {
				if mask&(1<<uint(c)) == 0 {
					continue
				}
				addIfLegalTarget(p, ml, from, NewSquare(row, c), own, capturesOnly)
			}
			if cannon {
				mask = CannonFileAttacks(row, p.OccupiedCols[col])
			} else {
				mask = RookFileAttacks(row, p.OccupiedCols[col])
			}
			for r := 0; r < 10; r++ {
				if mask&(1<<uint(r)) == 0 {
					continue
				}
				addIfLegalTarget(p, ml, from, NewSquare(r, col), own, capturesOnly)
			}
		})
	}
	genSliding(Chariot, false)
	genSliding(Cannon, true)

	p.PieceBitboard(side, Horse).ForEach(func(from Square) {
		for _, jump := range HorseMoves(from) {
			if !p.IsEmpty(jump.leg) {
				continue
			}
			addIfLegalTarget(p, ml, from, jump.target, own, capturesOnly)
		}
	})

	p.PieceBitboard(side, Elephant).ForEach(func(from Square) {
		for _, jump := range ElephantMoves(from) {
			if !p.IsEmpty(jump.eye) {
				continue
			}
			addIfLegalTarget(p, ml, from, jump.target, own, capturesOnly)
		}
	})

	p.PieceBitboard(side, Advisor).ForEach(func(from Square) {
		for _, target := range AdvisorMoves(from) {
			addIfLegalTarget(p, ml, from, target, own, capturesOnly)
		}
	})

	p.PieceBitboard(side, General).ForEach(func(from Square) {
		for _, target := range GeneralMoves(from) {
			addIfLegalTarget(p, ml, from, target, own, capturesOnly)
		}
	})

	p.PieceBitboard(side, Soldier).ForEach(func(from Square) {
		for _, target := range SoldierMoves(side, from) {
			addIfLegalTarget(p, ml, from, target, own, capturesOnly)
		}
	})
}

func addIfLegalTarget(p *Position, ml *MoveList, from, to Square, own Bitboard, capturesOnly bool) {
	if own.IsSet(to) {
		return
	}
	isCapture := !p.IsEmpty(to)
	if capturesOnly && !isCapture {
		return
	}
	ml.Add(Move{
		FromRow: int8(from.Row()), FromCol: int8(from.Col()),
		ToRow: int8(to.Row()), ToCol: int8(to.Col()),
	})
}

func scoreMoves(p *Position, ml *MoveList, hints OrderingHints) {
	valueOf := hints.CaptureVal
	if valueOf == nil {
		valueOf = PieceValue
	}
	hashScore := hints.HashMoveScore
	if hashScore == 0 {
		hashScore = ScoreHashMove
	}
	captureBase := hints.CaptureBaseScore
	if captureBase == 0 {
		captureBase = ScoreCaptureBase
	}
	killerScore := hints.KillerMoveScore
	if killerScore == 0 {
		killerScore = ScoreKillerMove
	}
	historyMax := hints.HistoryMaxScore
	if historyMax == 0 {
		historyMax = ScoreHistoryMax
	}

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !hints.HashMove.IsNone() && m.SameMove(hints.HashMove) {
			m.Score = hashScore
			ml.Set(i, m)
			continue
		}
		target := p.PieceAt(m.To().Square())
		if !target.IsNone() {
			attacker := p.PieceAt(m.From().Square())
			m.Score = captureBase + valueOf(target.Type) - valueOf(attacker.Type)/10
			ml.Set(i, m)
			continue
		}
		if m.SameMove(hints.Killers[0]) || m.SameMove(hints.Killers[1]) {
			m.Score = killerScore
			ml.Set(i, m)
			continue
		}
		if hints.History != nil {
			h := hints.History[m.From().Square()][m.To().Square()]
			if h > historyMax {
				h = historyMax
			}
			m.Score = h
			ml.Set(i, m)
		}
	}
}

// GenerateLegalMoves filters GenerateMoves down to moves that don't leave
// the mover in check or violate the flying-general rule. Intended for
// perft-style tests and UI move-highlighting, not the hot search path
// (which defers legality to the apply/test/undo cycle in the searcher).
func GenerateLegalMoves(p *Position, side Color) *MoveList {
	pseudo := GenerateMoves(p, side, OrderingHints{})
	legal := &MoveList{}
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		sim := p.Copy()
		sim.ApplyMove(m, side)
		if IsInCheck(sim, side) || IsFlyingGeneral(sim) {
			continue
		}
		legal.Add(m)
	}
	return legal
}

// HasAnyLegalMove reports whether side has at least one legal move,
// generating the whole pseudo-legal list but stopping the apply-and-test
// filter at the first legal move found.
func HasAnyLegalMove(p *Position, side Color) bool {
	return countLegalMoves(p, side, 1) > 0
}

// HasMoreThanOneLegalMove reports whether side has two or more distinct
// legal moves, used by draw/repetition logic that needs to distinguish
// "forced" positions from ones with a real choice.
func HasMoreThanOneLegalMove(p *Position, side Color) bool {
	return countLegalMoves(p, side, 2) > 1
}

// countLegalMoves walks the pseudo-legal list, applying and testing each
// move, stopping early once limit legal moves have been found.
func countLegalMoves(p *Position, side Color, limit int) int {
	ml := &MoveList{}
	generatePseudoLegal(p, side, ml, false)
	found := 0
	for i := 0; i < ml.Len() && found < limit; i++ {
		m := ml.Get(i)
		sim := p.Copy()
		sim.ApplyMove(m, side)
		if IsInCheck(sim, side) || IsFlyingGeneral(sim) {
			continue
		}
		found++
	}
	return found
}
