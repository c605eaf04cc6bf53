// Package game layers turn order, move history, and end-of-game status on
// top of a bare board.Position, so callers don't have to re-derive
// checkmate/stalemate or threefold repetition on every move themselves.
package game

import (
	"errors"

	"xiangqi/internal/board"
	"xiangqi/internal/xlog"
)

var log = xlog.MustGetLogger("game")

// ErrGameOver is returned by MakeMove once Status is no longer Playing.
var ErrGameOver = errors.New("game: game has already ended")

// Status is the outcome of the game as of the current position.
type Status int

const (
	Playing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// MoveRecord is one played move, kept for undo and for display (SAN-less,
// since Xiangqi notation is out of scope here).
type MoveRecord struct {
	From, To board.Coordinate
	Piece    board.Piece
	Captured board.Piece
	Color    board.Color
	Hash     uint64
}

// State tracks one game from the initial position: whose turn it is,
// whether it has ended, and the move history needed to undo and to detect
// threefold repetition.
type State struct {
	Position *board.Position
	Turn     board.Color
	Status   Status
	Winner   board.Color // meaningful only when Status == Checkmate
	LastMove board.Move
	History  []MoveRecord

	initialHash uint64
}

// New starts a fresh game from the standard opening position, Red to move.
func New() *State {
	pos := board.NewPosition()
	return &State{
		Position:    pos,
		Turn:        board.Red,
		Status:      Playing,
		LastMove:    board.NoMove,
		initialHash: pos.ZobristHash,
	}
}

// FromPosition starts a game from an arbitrary position, e.g. one loaded
// from FEN. The position is taken as the repetition baseline; no earlier
// history is assumed.
func FromPosition(pos *board.Position, turn board.Color) *State {
	return &State{
		Position:    pos,
		Turn:        turn,
		Status:      Playing,
		LastMove:    board.NoMove,
		initialHash: pos.ZobristHash,
	}
}

// MakeMove validates and applies a move, then updates Status for the side
// to move next. It rejects the move outright if the game has already
// ended, if the move is illegal, or if it would cause a third repetition
// of a position the mover had an alternative to — threefold repetition
// forced by a mover with only one legal move is allowed through, matching
// the usual over-the-board ruling that a forced repetition isn't abusive.
func (s *State) MakeMove(from, to board.Coordinate) error {
	if s.Status != Playing {
		return ErrGameOver
	}

	if err := board.IsValidMove(s.Position, from, to, s.Turn); err != nil {
		log.Debugf("illegal move rejected: %s->%s: %v", from, to, err)
		return err
	}

	hadAlternative := board.HasMoreThanOneLegalMove(s.Position, s.Turn)

	mv := board.Move{
		FromRow: int8(from.Row), FromCol: int8(from.Col),
		ToRow: int8(to.Row), ToCol: int8(to.Col),
	}
	piece := s.Position.PieceAt(from.Square())
	captured := s.Position.ApplyMove(mv, s.Turn)

	if s.countRepetition(s.Position.ZobristHash) >= 2 && hadAlternative {
		s.Position.UndoMove(mv, captured, s.Turn)
		log.Debugf("illegal move rejected: %s->%s: %v", from, to, board.ErrThreeFoldRepetition)
		return board.ErrThreeFoldRepetition
	}

	s.History = append(s.History, MoveRecord{
		From: from, To: to,
		Piece:    piece,
		Captured: captured,
		Color:    s.Turn,
		Hash:     s.Position.ZobristHash,
	})
	s.LastMove = mv
	s.Turn = s.Turn.Other()
	s.updateStatus()

	return nil
}

// countRepetition counts how many times hash has already occurred, across
// the initial position and every move played since.
func (s *State) countRepetition(hash uint64) int {
	count := 0
	if hash == s.initialHash {
		count++
	}
	for _, r := range s.History {
		if r.Hash == hash {
			count++
		}
	}
	return count
}

func (s *State) updateStatus() {
	if board.HasAnyLegalMove(s.Position, s.Turn) {
		return
	}
	if board.IsInCheck(s.Position, s.Turn) {
		s.Status = Checkmate
		s.Winner = s.Turn.Other()
		return
	}
	s.Status = Stalemate
}

// UndoMove reverts the most recently played move, restoring Turn, LastMove
// and Status (a game ended by the undone move returns to Playing). It
// reports false when there is no move to undo.
func (s *State) UndoMove() bool {
	if len(s.History) == 0 {
		return false
	}
	record := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]

	mv := board.Move{
		FromRow: int8(record.From.Row), FromCol: int8(record.From.Col),
		ToRow: int8(record.To.Row), ToCol: int8(record.To.Col),
	}
	mover := s.Turn.Other()
	s.Position.UndoMove(mv, record.Captured, mover)
	s.Turn = mover

	if len(s.History) > 0 {
		prev := s.History[len(s.History)-1]
		s.LastMove = board.Move{
			FromRow: int8(prev.From.Row), FromCol: int8(prev.From.Col),
			ToRow: int8(prev.To.Row), ToCol: int8(prev.To.Col),
		}
	} else {
		s.LastMove = board.NoMove
	}
	s.Status = Playing
	return true
}

// Hashes returns the Zobrist history (initial position first, then every
// played move) in the form the search's repetition check expects.
func (s *State) Hashes() []uint64 {
	hashes := make([]uint64, 0, len(s.History)+1)
	hashes = append(hashes, s.initialHash)
	for _, r := range s.History {
		hashes = append(hashes, r.Hash)
	}
	return hashes
}
