package board

// Color identifies the side owning a piece or to move.
type Color uint8

const (
	Red Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// Index returns 0 for Red, 1 for Black; used to index per-color arrays.
func (c Color) Index() int {
	return int(c)
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType enumerates the seven Xiangqi piece kinds.
type PieceType uint8

const (
	General PieceType = iota
	Advisor
	Elephant
	Horse
	Chariot
	Cannon
	Soldier
	NoPieceType PieceType = 7
)

// Index returns the piece type's array index (0-6).
func (pt PieceType) Index() int {
	return int(pt)
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case General:
		return "General"
	case Advisor:
		return "Advisor"
	case Elephant:
		return "Elephant"
	case Horse:
		return "Horse"
	case Chariot:
		return "Chariot"
	case Cannon:
		return "Cannon"
	case Soldier:
		return "Soldier"
	default:
		return "None"
	}
}

// Piece is a (type, color) pair.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece marks an empty square in the mailbox.
var NoPiece = Piece{Type: NoPieceType, Color: NoColor}

// IsNone reports whether this represents "no piece".
func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// fenChars maps PieceType.Index() to the Red-uppercase FEN letter.
var fenChars = [7]byte{'K', 'A', 'B', 'N', 'R', 'C', 'P'}

// Char returns the FEN character for the piece: uppercase for Red,
// lowercase for Black.
func (p Piece) Char() byte {
	if p.IsNone() {
		return ' '
	}
	c := fenChars[p.Type.Index()]
	if p.Color == Black {
		return c - 'A' + 'a'
	}
	return c
}

// PieceFromChar converts a FEN letter to a Piece, or NoPiece if unrecognized.
func PieceFromChar(c byte) Piece {
	upper := c
	color := Red
	if c >= 'a' && c <= 'z' {
		upper = c - 'a' + 'A'
		color = Black
	}
	for i, fc := range fenChars {
		if fc == upper {
			return Piece{Type: PieceType(i), Color: color}
		}
	}
	return NoPiece
}

// bitboardIndex returns this piece's slot in Position.Bitboards ([14]Bitboard).
func bitboardIndex(color Color, pt PieceType) int {
	return color.Index()*7 + pt.Index()
}
