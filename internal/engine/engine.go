package engine

import (
	"sync/atomic"
	"time"

	"xiangqi/internal/book"
	"xiangqi/internal/board"
	"xiangqi/internal/xlog"
)

var log = xlog.MustGetLogger("engine")

// Engine is the single-threaded search engine: one Searcher, one
// transposition table, an optional opening book, wired together behind
// the configuration knobs in Config. Per the concurrency model, an
// Engine is not safe for concurrent use — callers wanting parallel
// analysis construct independent Engines.
type Engine struct {
	tt       *TranspositionTable
	searcher *Searcher
	cfg      Config

	book *book.Book

	stopFlag atomic.Bool

	rootHistory []uint64
}

// NewEngine builds an engine from cfg, sizing the transposition table
// from cfg.TTSizeMB.
func NewEngine(cfg Config) *Engine {
	tt := NewTranspositionTable(cfg.TTSizeMB)
	log.Infof("engine started: tt_size_mb=%d pruning_method=%d", cfg.TTSizeMB, cfg.PruningMethod)
	return &Engine{
		tt:       tt,
		searcher: NewSearcher(tt, cfg),
		cfg:      cfg,
	}
}

// ApplyConfig reconfigures the engine between searches. Changing
// tt_size_mb rebuilds the transposition table from scratch (per §4.7,
// resizing only happens here, never mid-search); every other knob is
// applied to the existing searcher without disturbing the table.
func (e *Engine) ApplyConfig(cfg Config) {
	if cfg.TTSizeMB != e.cfg.TTSizeMB {
		log.Infof("resizing transposition table: %dMB -> %dMB", e.cfg.TTSizeMB, cfg.TTSizeMB)
		e.tt.Resize(cfg.TTSizeMB)
	}
	if cfg.PruningMethod == 0 {
		log.Warning("pruning_method=0 disables move-count and LMR pruning; search will be slower")
	}
	e.cfg = cfg
	e.searcher.ApplyConfig(cfg)
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetBook installs an opening book the engine consults before searching.
func (e *Engine) SetBook(b *book.Book) { e.book = b }

// HasBook reports whether an opening book is installed.
func (e *Engine) HasBook() bool { return e.book != nil }

// SetHistory records the Zobrist hashes of positions already reached
// this game (oldest first), consulted by the repetition rules during
// search.
func (e *Engine) SetHistory(hashes []uint64) {
	e.rootHistory = hashes
}

// Stop requests the in-flight search to return as soon as it next
// samples the clock.
func (e *Engine) Stop() {
	e.stopFlag.Store(true)
	e.searcher.Stop()
}

// Clear resets the transposition table and correction history, discarding
// all cached results and learned eval adjustments.
func (e *Engine) Clear() {
	e.tt.Clear()
	e.searcher.Clear()
}

// Search consults the opening book first (if installed); failing that,
// or if the book's suggestion is in excluded, it runs the full search.
// Returns false if the position has no legal move.
func (e *Engine) Search(pos *board.Position, side board.Color, limit SearchLimit, excluded []board.Move) (board.Move, SearchStats, bool) {
	if e.book != nil {
		if m, ok := e.book.Probe(pos.ZobristHash); ok && !excludesMove(excluded, m) {
			log.Debugf("book move: %s", m)
			return m, SearchStats{}, true
		}
	}

	e.stopFlag.Store(false)
	start := time.Now()
	move, stats := e.searcher.Search(pos, side, limit, e.rootHistory, excluded)
	log.Debugf("depth=%d score=%d nodes=%d time=%dms", stats.Depth, stats.Score, stats.Nodes, time.Since(start).Milliseconds())

	if move.IsNone() {
		return board.NoMove, stats, false
	}
	return move, stats, true
}

func excludesMove(excluded []board.Move, m board.Move) bool {
	for _, ex := range excluded {
		if ex.SameMove(m) {
			return true
		}
	}
	return false
}

// Evaluate returns the engine's static evaluation of pos from Red's
// perspective, bypassing search entirely.
func (e *Engine) Evaluate(pos *board.Position) int32 {
	return Evaluate(pos, e.cfg.Weights())
}

// Nodes returns the node count from the most recent search.
func (e *Engine) Nodes() uint64 { return e.searcher.Nodes() }

// HashFull returns the permille of the transposition table in use.
func (e *Engine) HashFull() int { return e.tt.HashFull() }
