package engine

import (
	"sync/atomic"
	"time"

	"xiangqi/internal/board"
)

// Infinity bounds the root aspiration window and the initial alpha/beta
// passed into the tree. It's a fixed sentinel, distinct from the
// config-scaled Config.MateScore, chosen large enough to exceed one.
const Infinity = 32000

// pruningMateThreshold is the literal |beta| cutoff below which ProbCut,
// reverse futility pruning, and null-move pruning are allowed to fire. It
// is not derived from Config.MateScore/MaxPly; the ground truth hardcodes
// this exact value regardless of how mate scores are configured.
const pruningMateThreshold = 15000

// LimitKind selects how a search decides when to stop.
type LimitKind uint8

const (
	LimitDepth LimitKind = iota
	LimitTime
)

// SearchLimit bounds a single search call, by depth or by wall clock.
type SearchLimit struct {
	Kind   LimitKind
	Depth  int
	TimeMs int64
}

// DepthLimit stops the search once depth is completed.
func DepthLimit(depth int) SearchLimit {
	return SearchLimit{Kind: LimitDepth, Depth: depth}
}

// TimeLimit stops the search once ms milliseconds have elapsed, finishing
// whatever iteration is in flight with a soft/hard deadline split.
func TimeLimit(ms int64) SearchLimit {
	return SearchLimit{Kind: LimitTime, TimeMs: ms}
}

// SearchStats reports what the last completed iteration accomplished.
type SearchStats struct {
	Depth   int
	Nodes   uint64
	TimeMs  int64
	Score   int32
	PV      []board.Move
}

// PVTable stores the principal variation discovered at each ply.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

func (pv *PVTable) update(ply int, m board.Move) {
	pv.moves[ply][ply] = m
	for j := ply + 1; j < pv.length[ply+1]; j++ {
		pv.moves[ply][j] = pv.moves[ply+1][j]
	}
	pv.length[ply] = pv.length[ply+1]
}

// line returns the principal variation found from the root.
func (pv *PVTable) line() []board.Move {
	n := pv.length[0]
	out := make([]board.Move, n)
	copy(out, pv.moves[0][:n])
	return out
}

// Searcher runs a single-threaded iterative-deepening alpha-beta search
// over one position at a time. It is not safe for concurrent use; callers
// wanting parallel analysis run independent Searchers over position copies.
type Searcher struct {
	tt      *TranspositionTable
	orderer *MoveOrderer
	cfg     Config
	weights Weights

	pos          *board.Position
	side         board.Color // side to move at the root of the current search
	excludedRoot []board.Move

	nodes    uint64
	stopFlag atomic.Bool

	startTime    time.Time
	softDeadline time.Time
	hardDeadline time.Time
	timeLimited  bool

	pv PVTable

	repetition []uint64

	moveCountTable [64]int
	lmrTable       [64][64]int

	// mateScoreAtPly[ply] is cfg.MateScore-ply, the score assigned to a
	// mate found at that ply; mateThreshold is cfg.MateScore-MaxPly, the
	// cutoff above which a score is known to already be a mate score.
	// Both are rebuilt from cfg.MateScore whenever it changes, per
	// precompute_mate_scores in the engine this was ported from.
	mateScoreAtPly [MaxPly + 1]int32
	mateThreshold  int32

	correction *CorrectionHistory
	evalCache  *EvalCache
}

// NewSearcher builds a searcher sharing tt across games (cleared between
// them by the caller) and starting from cfg's pruning knobs.
func NewSearcher(tt *TranspositionTable, cfg Config) *Searcher {
	s := &Searcher{
		tt:         tt,
		orderer:    NewMoveOrderer(cfg),
		cfg:        cfg,
		weights:    cfg.Weights(),
		correction: NewCorrectionHistory(),
		evalCache:  NewEvalCache(4),
	}
	s.rebuildTables()
	return s
}

// ApplyConfig updates the searcher's knobs and derived tables. It does not
// touch the transposition table; a caller that changes tt_size_mb resizes
// the table itself (Engine.ApplyConfig calls TranspositionTable.Resize,
// which replaces the table's contents in place, so the pointer this
// searcher holds stays valid).
func (s *Searcher) ApplyConfig(cfg Config) {
	s.cfg = cfg
	s.weights = cfg.Weights()
	s.orderer.ApplyConfig(cfg)
	s.rebuildTables()
}

func (s *Searcher) rebuildTables() {
	for ply := 0; ply <= MaxPly; ply++ {
		s.mateScoreAtPly[ply] = s.cfg.MateScore - int32(ply)
	}
	s.mateThreshold = s.cfg.MateScore - MaxPly

	mult := s.cfg.PruningMultiplier
	if mult <= 0 {
		mult = 1.0
	}
	for d := 0; d < len(s.moveCountTable); d++ {
		s.moveCountTable[d] = int(float64(d*d+8) * mult)
	}
	for d := 0; d < len(s.lmrTable); d++ {
		for m := 0; m < len(s.lmrTable[d]); m++ {
			if d < 3 || m < 4 {
				s.lmrTable[d][m] = 0
				continue
			}
			r := 1 + lnApprox(float64(d))*lnApprox(float64(m))/1.5
			ri := int(r)
			if ri > d-1 {
				ri = d - 1
			}
			if ri < 0 {
				ri = 0
			}
			s.lmrTable[d][m] = ri
		}
	}
}

// lnApprox is a small natural-log approximation good enough for shaping a
// reduction table; precision beyond a tenth of a ply doesn't matter here.
func lnApprox(x float64) float64 {
	if x <= 1 {
		return 0
	}
	// Range-reduce into [1,2) using repeated halving, ln(2)=0.6931472.
	const ln2 = 0.6931471805599453
	n := 0.0
	for x >= 2 {
		x /= 2
		n++
	}
	// ln(1+y) for y in [0,1) via a short series.
	y := x - 1
	series := y - y*y/2 + y*y*y/3 - y*y*y*y/4
	return n*ln2 + series
}

// Stop requests the in-flight search to unwind as soon as it next checks.
func (s *Searcher) Stop() { s.stopFlag.Store(true) }

// Nodes returns the number of nodes visited in the last/current search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Clear discards the correction history, used when a new game begins and
// evaluation errors from the old one no longer apply.
func (s *Searcher) Clear() {
	s.correction.Clear()
	s.evalCache.Clear()
}

// modernPruning reports whether the pruning steps (ProbCut, reverse
// futility, null-move, singular extension, move-count, late-move and
// futility pruning, LMR) run in this search. Method 0 turns all of them
// off, leaving a plain PVS search kept for comparison and debugging; every
// nonzero method turns all of them on, so methods 1 and 2 search alike.
func (s *Searcher) modernPruning() bool { return s.cfg.PruningMethod != 0 }

// Search runs iterative deepening from pos (not mutated by the caller
// afterward — the searcher applies and undoes moves on it directly) for
// side to move, honoring limit and stopping early on repetition of
// history (the hashes of positions already reached this game, oldest
// first). excluded, when non-empty, is filtered out of the root move
// list — the caller forcing a different reply, e.g. after a repetition
// rejection. It returns the best move found and statistics for the
// deepest completed iteration.
func (s *Searcher) Search(pos *board.Position, side board.Color, limit SearchLimit, history []uint64, excluded []board.Move) (board.Move, SearchStats) {
	s.pos = pos
	s.side = side
	s.excludedRoot = excluded
	s.nodes = 0
	s.stopFlag.Store(false)
	s.orderer.ClearKillers()
	s.tt.NewSearch()

	s.repetition = append(s.repetition[:0], history...)

	s.startTime = time.Now()
	s.timeLimited = limit.Kind == LimitTime
	if s.timeLimited {
		total := time.Duration(limit.TimeMs) * time.Millisecond
		s.softDeadline = s.startTime.Add(total * 6 / 10)
		s.hardDeadline = s.startTime.Add(total)
	}

	maxDepth := limit.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	var bestMove board.Move
	var bestScore int32
	completedDepth := 0

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.aspirationSearch(depth, bestScore)
		if s.stopFlag.Load() {
			break
		}

		bestScore = score
		completedDepth = depth
		if s.pv.length[0] > 0 {
			bestMove = s.pv.moves[0][0]
		}

		if s.timeLimited && time.Now().After(s.softDeadline) {
			break
		}
		if score > s.mateThreshold || score < -s.mateThreshold {
			break
		}
		s.orderer.AgeHistory()
		s.correction.Age()
	}

	return bestMove, SearchStats{
		Depth:  completedDepth,
		Nodes:  s.nodes,
		TimeMs: time.Since(s.startTime).Milliseconds(),
		Score:  bestScore,
		PV:     s.pv.line(),
	}
}

// aspirationSearch widens a narrow window around the previous iteration's
// score, re-searching with progressively wider bounds on fail-high/low.
func (s *Searcher) aspirationSearch(depth int, prevScore int32) int32 {
	if depth <= 3 {
		return s.rootSearch(depth, -Infinity, Infinity)
	}

	window := int32(50)
	alpha, beta := prevScore-window, prevScore+window
	if alpha < -Infinity {
		alpha = -Infinity
	}
	if beta > Infinity {
		beta = Infinity
	}

	for {
		score := s.rootSearch(depth, alpha, beta)
		if s.stopFlag.Load() {
			return score
		}
		if score <= alpha {
			alpha -= window
			if alpha < -Infinity {
				alpha = -Infinity
			}
			window *= 2
			continue
		}
		if score >= beta {
			beta += window
			if beta > Infinity {
				beta = Infinity
			}
			window *= 2
			continue
		}
		return score
	}
}

// rootSearch drives the first ply directly so the caller can read off the
// principal variation and keep searching single moves without rebuilding
// the whole recursive machinery for the common "one legal move" case.
func (s *Searcher) rootSearch(depth int, alpha, beta int32) int32 {
	side := s.side

	hashMove := board.NoMove
	if entry, found := s.tt.ProbeRaw(s.pos.ZobristHash); found {
		hashMove = entry.BestMove
	}

	ml := board.GenerateMoves(s.pos, side, s.orderer.Hints(0, hashMove))
	legalFilter(s.pos, side, ml)
	excludeMoves(ml, s.excludedRoot)

	if ml.Len() == 0 {
		s.pv.length[0] = 0
		if board.IsInCheck(s.pos, side) {
			return -s.mateScoreAtPly[0]
		}
		return 0
	}

	if ml.Len() == 1 {
		m := ml.Get(0)
		captured := s.pos.ApplyMove(m, side)
		score := -s.negamax(depth-1, 1, -Infinity, Infinity, side.Other(), board.NoMove)
		s.pos.UndoMove(m, captured, side)
		s.pv.moves[0][0] = m
		s.pv.length[0] = 1
		return score
	}

	bestScore := int32(-Infinity)
	bestMove := board.NoMove
	flag := TTUpperBound

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		captured := s.pos.ApplyMove(m, side)

		if s.countRepetition(s.pos.ZobristHash) >= 2 {
			s.pos.UndoMove(m, captured, side)
			continue
		}

		var score int32
		if i == 0 {
			score = -s.negamax(depth-1, 1, -beta, -alpha, side.Other(), board.NoMove)
		} else {
			score = -s.negamax(depth-1, 1, -alpha-1, -alpha, side.Other(), board.NoMove)
			if score > alpha && score < beta {
				score = -s.negamax(depth-1, 1, -beta, -alpha, side.Other(), board.NoMove)
			}
		}

		s.pos.UndoMove(m, captured, side)

		if s.stopFlag.Load() {
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				flag = TTExact
				s.pv.moves[0][0] = m
				for j := 1; j < s.pv.length[1]; j++ {
					s.pv.moves[0][j] = s.pv.moves[1][j]
				}
				s.pv.length[0] = s.pv.length[1] + 1
			}
		}
		if alpha >= beta {
			flag = TTLowerBound
			if s.pos.IsEmpty(m.To().Square()) {
				s.orderer.RecordKiller(m, 0)
				s.orderer.RecordHistory(m, depth)
			}
			break
		}
	}

	s.tt.Store(s.pos.ZobristHash, depth, s.adjustScoreToTT(bestScore, 0), flag, bestMove)
	return bestScore
}

// negamax searches the subtree after the side-to-move side has reached
// s.pos, returning a score from side's perspective. excluded, when not
// NoMove, is skipped entirely — used by the singular-extension probe to
// search "everything but the hash move".
func (s *Searcher) negamax(depth, ply int, alpha, beta int32, side board.Color, excluded board.Move) int32 {
	if ply >= MaxPly-1 {
		return s.evalRelative(side)
	}
	s.pv.length[ply] = ply

	s.nodes++
	if s.nodes&1023 == 0 && s.checkTime() {
		s.stopFlag.Store(true)
	}
	if s.stopFlag.Load() {
		return 0
	}

	mateDist := s.mateScoreAtPly[ply]
	if mateDist < beta {
		beta = mateDist
	}
	if -mateDist > alpha {
		alpha = -mateDist
	}
	if alpha >= beta {
		return alpha
	}

	if s.countRepetition(s.pos.ZobristHash) >= 2 {
		return 0
	}
	s.repetition = append(s.repetition, s.pos.ZobristHash)
	defer func() { s.repetition = s.repetition[:len(s.repetition)-1] }()

	hashMove := board.NoMove
	if excluded.IsNone() {
		score, hit, hm := s.tt.Probe(s.pos.ZobristHash, depth, alpha, beta)
		hashMove = hm
		if hit {
			return s.adjustScoreFromTT(score, ply)
		}
		if entry, found := s.tt.ProbeRaw(s.pos.ZobristHash); found {
			adj := s.adjustScoreFromTT(entry.Score, ply)
			switch entry.Flag {
			case TTLowerBound:
				if adj > alpha {
					alpha = adj
				}
			case TTUpperBound:
				if adj < beta {
					beta = adj
				}
			}
			if alpha >= beta {
				return alpha
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(ply, alpha, beta, side)
	}

	inCheck := board.IsInCheck(s.pos, side)
	pruning := s.modernPruning() && excluded.IsNone()

	var rawEval, staticEval int32
	haveStaticEval := false
	lazyStaticEval := func() int32 {
		if !haveStaticEval {
			rawEval = s.evalRelative(side)
			staticEval = rawEval + s.correction.Get(s.pos)
			haveStaticEval = true
		}
		return staticEval
	}

	if pruning && depth >= s.cfg.ProbcutDepth && !inCheck && absInt32(beta) < pruningMateThreshold {
		probCutBeta := beta + s.cfg.ProbcutMargin
		reduced := depth - 1 - s.cfg.ProbcutReduction
		if reduced < 1 {
			reduced = 1
		}
		captures := board.GenerateCaptures(s.pos, side, s.orderer.Hints(ply, board.NoMove))
		for i := 0; i < captures.Len(); i++ {
			m := captures.Get(i)
			captured := s.pos.ApplyMove(m, side)
			legal := !board.IsInCheck(s.pos, side) && !board.IsFlyingGeneral(s.pos)
			var score int32 = -Infinity
			if legal {
				score = -s.negamax(reduced, ply+1, -probCutBeta, -probCutBeta+1, side.Other(), board.NoMove)
			}
			s.pos.UndoMove(m, captured, side)
			if legal && score >= probCutBeta {
				return beta
			}
		}
	}

	if pruning && depth <= 3 && !inCheck && absInt32(beta) < pruningMateThreshold {
		if eval := lazyStaticEval(); eval-int32(120*depth) >= beta {
			return eval
		}
	}

	if pruning && depth >= 3 && !inCheck && absInt32(beta) < pruningMateThreshold && s.hasNonPawnMaterial(side) {
		r := 2
		if depth > 6 {
			r = 3
		}
		s.pos.ApplyNullMove()
		reduced := depth - 1 - r
		if reduced < 0 {
			reduced = 0
		}
		score := -s.negamax(reduced, ply+1, -beta, -beta+1, side.Other(), board.NoMove)
		s.pos.ApplyNullMove()
		if !s.stopFlag.Load() && score >= beta {
			return beta
		}
	}

	if hashMove.IsNone() && depth >= 4 {
		s.negamax(depth-2, ply, alpha, beta, side, board.NoMove)
		if entry, found := s.tt.ProbeRaw(s.pos.ZobristHash); found {
			hashMove = entry.BestMove
		}
	}

	singularExtMove := board.NoMove
	if pruning && depth >= s.cfg.SingularExtensionMinDepth && !hashMove.IsNone() {
		if entry, found := s.tt.ProbeRaw(s.pos.ZobristHash); found &&
			int(entry.Depth) >= depth-3 && entry.Flag != TTUpperBound {
			margin := s.cfg.SingularExtensionMargin
			sBeta := entry.Score - margin
			sDepth := (depth - 1) / 2
			sScore := s.negamax(sDepth, ply, sBeta-1, sBeta, side, hashMove)
			if sScore < sBeta {
				singularExtMove = hashMove
			}
		}
	}

	ml := board.GenerateMoves(s.pos, side, s.orderer.Hints(ply, hashMove))
	if inCheck {
		legalFilter(s.pos, side, ml)
	}

	bestScore := int32(-Infinity)
	bestMove := board.NoMove
	flag := TTUpperBound
	movesSearched := 0
	hasRepetitionMove := false

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.SameMove(excluded) {
			continue
		}

		quiet := s.pos.IsEmpty(m.To().Square())

		if pruning && !inCheck {
			if quiet && movesSearched >= s.moveCountTable[clampIdx(depth, len(s.moveCountTable))] {
				continue
			}
			if depth <= 4 && quiet && movesSearched >= 8+5*depth*depth {
				continue
			}
			if depth <= 3 && quiet && lazyStaticEval()+int32(150*depth) < alpha {
				continue
			}
		}

		captured := s.pos.ApplyMove(m, side)

		if !inCheck {
			if board.IsInCheck(s.pos, side) || board.IsFlyingGeneral(s.pos) {
				s.pos.UndoMove(m, captured, side)
				continue
			}
		}

		if !board.HasAnyLegalMove(s.pos, side.Other()) {
			s.pos.UndoMove(m, captured, side)
			return s.mateScoreAtPly[ply+1]
		}

		if s.countRepetition(s.pos.ZobristHash) >= 2 {
			s.pos.UndoMove(m, captured, side)
			hasRepetitionMove = true
			continue
		}

		movesSearched++

		extension := 0
		if inCheck {
			extension = 1
		} else if !singularExtMove.IsNone() && m.SameMove(singularExtMove) {
			extension = 1
		}

		reduction := 0
		if pruning && quiet && !inCheck && movesSearched >= 4 {
			reduction = s.lmrTable[clampIdx(depth, len(s.lmrTable))][clampIdx(movesSearched, len(s.lmrTable[0]))]
		}

		var score int32
		if movesSearched == 1 {
			score = -s.negamax(depth-1+extension, ply+1, -beta, -alpha, side.Other(), board.NoMove)
		} else {
			reducedDepth := depth - 1 - reduction + extension
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			score = -s.negamax(reducedDepth, ply+1, -alpha-1, -alpha, side.Other(), board.NoMove)
			if score > alpha && reduction > 0 {
				score = -s.negamax(depth-1+extension, ply+1, -alpha-1, -alpha, side.Other(), board.NoMove)
			}
			if score > alpha && score < beta {
				score = -s.negamax(depth-1+extension, ply+1, -beta, -alpha, side.Other(), board.NoMove)
			}
		}

		s.pos.UndoMove(m, captured, side)

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				flag = TTExact
				s.pv.update(ply, m)
			}
		}
		if alpha >= beta {
			flag = TTLowerBound
			if quiet {
				s.orderer.RecordKiller(m, ply)
				s.orderer.RecordHistory(m, depth)
			}
			break
		}
	}

	if movesSearched == 0 {
		if hasRepetitionMove && !inCheck {
			return 0
		}
		return -s.mateScoreAtPly[ply]
	}

	if flag == TTExact && !inCheck && depth >= 2 && haveStaticEval {
		s.correction.Update(s.pos, bestScore, rawEval, depth)
	}

	if excluded.IsNone() {
		s.tt.Store(s.pos.ZobristHash, depth, s.adjustScoreToTT(bestScore, ply), flag, bestMove)
	}
	return bestScore
}

// quiescence resolves tactical noise at the leaves of the main search by
// searching captures only, bounded by a stand-pat evaluation.
func (s *Searcher) quiescence(ply int, alpha, beta int32, side board.Color) int32 {
	s.nodes++
	if s.nodes&1023 == 0 && s.checkTime() {
		s.stopFlag.Store(true)
	}
	if s.stopFlag.Load() {
		return 0
	}

	standPat := s.evalRelative(side)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if ply >= MaxPly-1 {
		return standPat
	}

	ml := board.GenerateCaptures(s.pos, side, s.orderer.Hints(ply, board.NoMove))

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		victim := s.pos.PieceAt(m.To().Square())

		if standPat+int32(board.PieceValue(victim.Type))+200 < alpha {
			continue
		}

		captured := s.pos.ApplyMove(m, side)
		if board.IsInCheck(s.pos, side) || board.IsFlyingGeneral(s.pos) {
			s.pos.UndoMove(m, captured, side)
			continue
		}

		score := -s.quiescence(ply+1, -beta, -alpha, side.Other())
		s.pos.UndoMove(m, captured, side)

		if s.stopFlag.Load() {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// evalRelative returns the static evaluation from side's perspective,
// going through the eval cache since the same position is reached by
// transposition far more often than it's reached fresh.
func (s *Searcher) evalRelative(side board.Color) int32 {
	key := s.pos.ZobristHash
	score, ok := s.evalCache.Probe(key)
	if !ok {
		score = Evaluate(s.pos, s.weights)
		s.evalCache.Store(key, score)
	}
	if side == board.Black {
		score = -score
	}
	return score
}

// adjustScoreFromTT adjusts a stored score for use at the current ply.
func (s *Searcher) adjustScoreFromTT(score int32, ply int) int32 {
	if score > s.mateThreshold {
		return score - int32(ply)
	}
	if score < -s.mateThreshold {
		return score + int32(ply)
	}
	return score
}

// adjustScoreToTT adjusts a score for storage in the transposition table.
func (s *Searcher) adjustScoreToTT(score int32, ply int) int32 {
	if score > s.mateThreshold {
		return score + int32(ply)
	}
	if score < -s.mateThreshold {
		return score - int32(ply)
	}
	return score
}

// hasNonPawnMaterial guards null-move pruning against zugzwang-prone
// endgames where only soldiers and the general remain.
func (s *Searcher) hasNonPawnMaterial(c board.Color) bool {
	for _, pt := range [...]board.PieceType{board.Chariot, board.Horse, board.Cannon, board.Elephant, board.Advisor} {
		if s.pos.PieceBitboard(c, pt).PopCount() > 0 {
			return true
		}
	}
	return false
}

// checkTime samples the wall clock; called only every 1024 nodes since
// time.Now() is not free.
func (s *Searcher) checkTime() bool {
	if !s.timeLimited {
		return false
	}
	return time.Now().After(s.hardDeadline)
}

// countRepetition counts how many times hash already appears on the
// repetition stack (history plus moves made so far in this search).
func (s *Searcher) countRepetition(hash uint64) int {
	n := 0
	for _, h := range s.repetition {
		if h == hash {
			n++
		}
	}
	return n
}

// legalFilter compacts ml in place, keeping only moves that don't leave
// side in check or violate the flying-general rule.
func legalFilter(pos *board.Position, side board.Color, ml *board.MoveList) {
	w := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		captured := pos.ApplyMove(m, side)
		legal := !board.IsInCheck(pos, side) && !board.IsFlyingGeneral(pos)
		pos.UndoMove(m, captured, side)
		if legal {
			ml.Set(w, m)
			w++
		}
	}
	ml.Truncate(w)
}

// excludeMoves compacts ml in place, dropping any move matching excluded.
func excludeMoves(ml *board.MoveList, excluded []board.Move) {
	if len(excluded) == 0 {
		return
	}
	w := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		skip := false
		for _, ex := range excluded {
			if m.SameMove(ex) {
				skip = true
				break
			}
		}
		if !skip {
			ml.Set(w, m)
			w++
		}
	}
	ml.Truncate(w)
}

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampIdx(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

