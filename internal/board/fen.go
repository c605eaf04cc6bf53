package board

import (
	"fmt"
	"strconv"
	"strings"

	"xiangqi/internal/xlog"
)

var log = xlog.MustGetLogger("board")

// ToFEN serializes the board plus side-to-move into the Xiangqi FEN-like
// format: ranks top-to-bottom (row 9 first), '/'-separated, digits
// collapsing empty runs, a single space, then 'w' (Red) or 'b' (Black).
// There is no castling, en-passant, or half-move-clock field — none of
// those chess concepts exist in Xiangqi.
func (p *Position) ToFEN(turn Color) string {
	var sb strings.Builder
	for row := 9; row >= 0; row-- {
		empty := 0
		for col := 0; col < 9; col++ {
			pc := p.Mailbox[NewSquare(row, col)]
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if turn == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// fenError logs and wraps a malformed-FEN error in one place so every
// rejection path reports consistently.
func fenError(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	log.Errorf(err.Error())
	return err
}

// FromFEN parses the format produced by ToFEN, returning the board and the
// side to move. It rejects ill-formed layouts, a rank count other than
// ten, unknown letters, and run lengths that would overflow a rank.
func FromFEN(fen string) (*Position, Color, error) {
	parts := strings.SplitN(fen, " ", 2)
	if len(parts) != 2 {
		return nil, NoColor, fenError("board: malformed fen %q: missing side-to-move", fen)
	}
	placement, sideStr := parts[0], strings.TrimSpace(parts[1])

	ranks := strings.Split(placement, "/")
	if len(ranks) != 10 {
		return nil, NoColor, fenError("board: malformed fen %q: expected 10 ranks, got %d", fen, len(ranks))
	}

	p := &Position{}
	for i := range p.Mailbox {
		p.Mailbox[i] = NoPiece
	}

	for i, rankStr := range ranks {
		row := 9 - i
		col := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '0' && ch <= '9' {
				run := int(ch - '0')
				col += run
				continue
			}
			pc := PieceFromChar(ch)
			if pc.IsNone() {
				return nil, NoColor, fenError("board: malformed fen %q: unknown piece letter %q", fen, ch)
			}
			if col >= 9 {
				return nil, NoColor, fenError("board: malformed fen %q: rank %d overflows", fen, row)
			}
			p.place(pc.Type, pc.Color, row, col)
			col++
		}
		if col != 9 {
			return nil, NoColor, fenError("board: malformed fen %q: rank %d has width %d, want 9", fen, row, col)
		}
	}

	var turn Color
	switch sideStr {
	case "w":
		turn = Red
	case "b":
		turn = Black
	default:
		return nil, NoColor, fenError("board: malformed fen %q: unknown side-to-move %q", fen, sideStr)
	}

	p.ZobristHash = p.calculateHash()
	p.RedMaterial, p.RedPST, p.BlackMaterial, p.BlackPST = p.calculateScores()

	return p, turn, nil
}
