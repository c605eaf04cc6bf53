package board

import "fmt"

// Move is a single Xiangqi move. Score is a search-time ordering hint,
// not part of the game-level move identity — two moves with equal
// from/to but different scores are the same move.
type Move struct {
	FromRow, FromCol int8
	ToRow, ToCol     int8
	Score            int32
}

// NoMove represents an absent move.
var NoMove = Move{FromRow: -1, FromCol: -1, ToRow: -1, ToCol: -1}

// IsNone reports whether this is the absent move.
func (m Move) IsNone() bool {
	return m.FromRow < 0
}

// From returns the move's origin coordinate.
func (m Move) From() Coordinate {
	return Coordinate{Row: int(m.FromRow), Col: int(m.FromCol)}
}

// To returns the move's destination coordinate.
func (m Move) To() Coordinate {
	return Coordinate{Row: int(m.ToRow), Col: int(m.ToCol)}
}

// SameMove reports whether two moves share the same from/to, ignoring score.
func (m Move) SameMove(o Move) bool {
	return m.FromRow == o.FromRow && m.FromCol == o.FromCol && m.ToRow == o.ToRow && m.ToCol == o.ToCol
}

// String renders the move as "(r,c)->(r,c)".
func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// moveListCapacity bounds the number of pseudo-legal moves reachable from
// any single Xiangqi position; generation never needs per-node heap
// allocation because of this fixed bound.
const moveListCapacity = 128

// MoveList is a fixed-capacity move buffer. Overflowing it is a bug in
// the generator, not a runtime case to be handled gracefully.
type MoveList struct {
	moves [moveListCapacity]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently held.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Truncate shrinks the list to its first n entries, used after compacting
// out illegal moves in place.
func (ml *MoveList) Truncate(n int) {
	ml.count = n
}

// Slice returns the live portion of the backing array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// SortDescending orders the list by Score, highest first. Lists are short
// (well under a hundred entries), so a plain insertion sort beats the
// overhead of sort.Slice's interface dispatch.
func (ml *MoveList) SortDescending() {
	for i := 1; i < ml.count; i++ {
		m := ml.moves[i]
		j := i - 1
		for j >= 0 && ml.moves[j].Score < m.Score {
			ml.moves[j+1] = ml.moves[j]
			j--
		}
		ml.moves[j+1] = m
	}
}
