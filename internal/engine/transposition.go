package engine

import (
	"xiangqi/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry represents an entry in the transposition table.
type TTEntry struct {
	Key      uint32     // Upper 32 bits of Zobrist hash for verification
	BestMove board.Move // Best move found
	Score    int32      // Score (bounded by flag)
	Depth    int8       // Search depth
	Flag     TTFlag     // Type of bound
	Age      uint8      // Generation for replacement
}

// TranspositionTable is a hash table for storing search results.
type TranspositionTable struct {
	entries []TTEntry
	size    uint64
	mask    uint64
	age     uint8

	hits   uint64
	probes uint64
}

// NewTranspositionTable creates a transposition table with the given size in MB.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(24) // Approximate size of TTEntry
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize

	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe implements the probe contract: a score is only usable when the
// entry's key matches and it was searched to at least depth, and its flag
// permits a cutoff at the given alpha/beta. A miss still surfaces the
// stored best move as an ordering hint.
func (tt *TranspositionTable) Probe(hash uint64, depth int, alpha, beta int32) (score int32, hit bool, hashMove board.Move) {
	tt.probes++

	idx := hash & tt.mask
	entry := tt.entries[idx]
	if entry.Key != uint32(hash>>32) || entry.Depth == 0 {
		return 0, false, board.NoMove
	}
	hashMove = entry.BestMove
	if int(entry.Depth) < depth {
		return 0, false, hashMove
	}

	switch entry.Flag {
	case TTExact:
		tt.hits++
		return entry.Score, true, hashMove
	case TTLowerBound:
		if entry.Score >= beta {
			tt.hits++
			return entry.Score, true, hashMove
		}
	case TTUpperBound:
		if entry.Score <= alpha {
			tt.hits++
			return entry.Score, true, hashMove
		}
	}
	return 0, false, hashMove
}

// ProbeRaw returns the stored entry for hash regardless of its depth, for
// callers that want to use it as soft bound information rather than a hard
// cutoff (narrowing alpha/beta, or seeding a hash-move hint).
func (tt *TranspositionTable) ProbeRaw(hash uint64) (entry TTEntry, found bool) {
	idx := hash & tt.mask
	e := tt.entries[idx]
	if e.Key != uint32(hash>>32) || e.Depth == 0 {
		return TTEntry{}, false
	}
	return e, true
}

// Store saves a position in the transposition table.
//
// Replacement strategy:
//   - Always replace if the slot is empty or holds a different key.
//   - Always replace if the incoming depth is at least the stored depth.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int32, flag TTFlag, bestMove board.Move) {
	idx := hash & tt.mask
	entry := &tt.entries[idx]
	key := uint32(hash >> 32)

	if entry.Key != key || entry.Depth == 0 || depth >= int(entry.Depth) {
		entry.Key = key
		entry.BestMove = bestMove
		entry.Score = score
		entry.Depth = int8(depth)
		entry.Flag = flag
		entry.Age = tt.age
	}
}

// NewSearch increments the age counter for a new search.
func (tt *TranspositionTable) NewSearch() {
	tt.age++
}

// Clear clears the transposition table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.age = 0
	tt.hits = 0
	tt.probes = 0
}

// Resize rebuilds the table at a new size; distinct from Clear because it
// only happens when the engine is reconfigured between searches.
func (tt *TranspositionTable) Resize(sizeMB int) {
	*tt = *NewTranspositionTable(sizeMB)
}

// HashFull returns the permille (parts per thousand) of the table that is used.
func (tt *TranspositionTable) HashFull() int {
	used := 0
	sampleSize := 1000
	if uint64(sampleSize) > tt.size {
		sampleSize = int(tt.size)
	}

	for i := 0; i < sampleSize; i++ {
		if tt.entries[i].Depth > 0 && tt.entries[i].Age == tt.age {
			used++
		}
	}

	return (used * 1000) / sampleSize
}

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() uint64 {
	return tt.size
}

