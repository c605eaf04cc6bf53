package engine

// EvalEntry caches one position's raw static evaluation (from Red's
// perspective, before the side-to-move negation evalRelative applies).
type EvalEntry struct {
	Key   uint64
	Score int32
}

// EvalCache memoizes Evaluate by Zobrist hash, so a position reached by
// transposition skips recomputing mobility and king-safety from scratch.
// It is intentionally separate from the transposition table: the TT only
// holds a usable entry when a prior search reached at least the requested
// depth, while every node computes a static eval regardless of depth.
type EvalCache struct {
	entries []EvalEntry
	mask    uint64
}

// NewEvalCache creates a cache sized in megabytes, rounded down to a power
// of two entry count.
func NewEvalCache(sizeMB int) *EvalCache {
	const entrySize = 12
	numEntries := (sizeMB * 1024 * 1024) / entrySize

	size := 1
	for size*2 <= numEntries {
		size *= 2
	}
	if size < 1 {
		size = 1
	}

	return &EvalCache{
		entries: make([]EvalEntry, size),
		mask:    uint64(size - 1),
	}
}

// Probe returns the cached evaluation for key, if present.
func (ec *EvalCache) Probe(key uint64) (int32, bool) {
	e := &ec.entries[key&ec.mask]
	if e.Key == key {
		return e.Score, true
	}
	return 0, false
}

// Store records key's evaluation, overwriting whatever shared its bucket.
func (ec *EvalCache) Store(key uint64, score int32) {
	e := &ec.entries[key&ec.mask]
	e.Key = key
	e.Score = score
}

// Clear empties the cache.
func (ec *EvalCache) Clear() {
	for i := range ec.entries {
		ec.entries[i] = EvalEntry{}
	}
}
