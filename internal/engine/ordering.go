package engine

import (
	"xiangqi/internal/board"
)

// MaxPly bounds the killer table and the deepest ply the searcher will
// ever reach; comfortably above any achievable Xiangqi search depth.
const MaxPly = 64

// MoveOrderer owns the killer and history tables that feed
// board.OrderingHints across a single search, plus the config-derived
// piece values and ordering scores that OrderingHints carries as
// overrides. Move scoring itself (hash move, MVV-LVA captures, killers,
// history) lives in board.GenerateMoves; this type only maintains the
// state that feeds those hints between plies and across
// iterative-deepening iterations.
type MoveOrderer struct {
	killers [MaxPly][2]board.Move
	history [90][90]int32

	cfg        Config
	captureVal func(board.PieceType) int32
}

// NewMoveOrderer returns an orderer with empty tables, scoring moves
// according to cfg.
func NewMoveOrderer(cfg Config) *MoveOrderer {
	return &MoveOrderer{cfg: cfg, captureVal: configCaptureValue(cfg)}
}

// ApplyConfig re-derives the piece values and ordering scores used by
// Hints/RecordHistory from cfg.
func (mo *MoveOrderer) ApplyConfig(cfg Config) {
	mo.cfg = cfg
	mo.captureVal = configCaptureValue(cfg)
}

// configCaptureValue builds an OrderingHints.CaptureVal lookup out of
// cfg's Val* fields, the move-ordering counterpart to board.PieceValue.
func configCaptureValue(cfg Config) func(board.PieceType) int32 {
	return func(pt board.PieceType) int32 {
		switch pt {
		case board.Soldier:
			return cfg.ValPawn
		case board.Advisor:
			return cfg.ValAdvisor
		case board.Elephant:
			return cfg.ValElephant
		case board.Horse:
			return cfg.ValHorse
		case board.Cannon:
			return cfg.ValCannon
		case board.Chariot:
			return cfg.ValRook
		case board.General:
			return cfg.ValKing
		default:
			return 0
		}
	}
}

// ClearKillers resets the killer table; called once per new search.
func (mo *MoveOrderer) ClearKillers() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoMove
		mo.killers[i][1] = board.NoMove
	}
}

// AgeHistory halves every history score between iterative-deepening
// iterations, so recent-iteration evidence dominates without ever
// resetting to zero.
func (mo *MoveOrderer) AgeHistory() {
	for i := range mo.history {
		for j := range mo.history[i] {
			mo.history[i][j] /= 2
		}
	}
}

// Hints builds the OrderingHints board.GenerateMoves/GenerateCaptures need
// for the given ply and TT hash-move suggestion, populated with this
// orderer's config-derived piece values and ordering scores.
func (mo *MoveOrderer) Hints(ply int, hashMove board.Move) board.OrderingHints {
	hints := board.OrderingHints{
		HashMove:         hashMove,
		History:          &mo.history,
		CaptureVal:       mo.captureVal,
		HashMoveScore:    mo.cfg.ScoreHashMove,
		CaptureBaseScore: mo.cfg.ScoreCaptureBase,
		KillerMoveScore:  mo.cfg.ScoreKillerMove,
		HistoryMaxScore:  mo.cfg.ScoreHistoryMax,
	}
	if ply >= 0 && ply < MaxPly {
		hints.Killers = mo.killers[ply]
	}
	return hints
}

// RecordKiller inserts m as the new first killer at ply, shifting the
// previous first killer into the second slot. A move already sitting in
// slot 0 is never duplicated.
func (mo *MoveOrderer) RecordKiller(m board.Move, ply int) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if mo.killers[ply][0].SameMove(m) {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = m
}

// RecordHistory rewards a quiet move that caused a beta cutoff with
// depth², capped at cfg.ScoreHistoryMax to match move-scoring's own cap.
func (mo *MoveOrderer) RecordHistory(m board.Move, depth int) {
	historyMax := mo.cfg.ScoreHistoryMax
	if historyMax == 0 {
		historyMax = board.ScoreHistoryMax
	}
	from, to := m.From().Square(), m.To().Square()
	mo.history[from][to] += int32(depth * depth)
	if mo.history[from][to] > historyMax {
		mo.history[from][to] = historyMax
	}
}
