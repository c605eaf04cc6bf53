package board

// Position is the canonical Xiangqi board state. Every field beyond
// Bitboards/Mailbox is redundant but kept consistent incrementally, so the
// evaluator and rules layers never need to rescan the board.
type Position struct {
	Bitboards [14]Bitboard // index = color.Index()*7 + pieceType.Index()
	Occupied  Bitboard
	Mailbox   [90]Piece

	OccupiedRows [10]uint16 // bit per column, one word per rank
	OccupiedCols [9]uint16  // bit per row, one word per file

	ZobristHash uint64

	RedMaterial, BlackMaterial int32
	RedPST, BlackPST           int32
}

// NewPosition returns the standard Xiangqi starting position.
func NewPosition() *Position {
	p := &Position{}
	for i := range p.Mailbox {
		p.Mailbox[i] = NoPiece
	}
	p.setupInitial()
	p.ZobristHash = p.calculateHash()
	p.RedMaterial, p.RedPST, p.BlackMaterial, p.BlackPST = p.calculateScores()
	return p
}

var backRowOrder = [9]PieceType{Chariot, Horse, Elephant, Advisor, General, Advisor, Elephant, Horse, Chariot}

func (p *Position) setupInitial() {
	// Red: back rank 0, cannons on rank 2, soldiers on rank 3.
	p.placeRow(0, Red, backRowOrder)
	p.place(Cannon, Red, 2, 1)
	p.place(Cannon, Red, 2, 7)
	for _, col := range [5]int{0, 2, 4, 6, 8} {
		p.place(Soldier, Red, 3, col)
	}

	// Black: back rank 9, cannons on rank 7, soldiers on rank 6.
	p.placeRow(9, Black, backRowOrder)
	p.place(Cannon, Black, 7, 1)
	p.place(Cannon, Black, 7, 7)
	for _, col := range [5]int{0, 2, 4, 6, 8} {
		p.place(Soldier, Black, 6, col)
	}
}

func (p *Position) placeRow(row int, c Color, order [9]PieceType) {
	for col, pt := range order {
		p.place(pt, c, row, col)
	}
}

// place adds a piece directly to the board without touching hash/score —
// used only during initial setup, before those sums are computed in bulk.
func (p *Position) place(pt PieceType, c Color, row, col int) {
	sq := NewSquare(row, col)
	p.Bitboards[bitboardIndex(c, pt)] = p.Bitboards[bitboardIndex(c, pt)].Set(sq)
	p.Occupied = p.Occupied.Set(sq)
	p.Mailbox[sq] = Piece{Type: pt, Color: c}
	p.OccupiedRows[row] |= 1 << uint(col)
	p.OccupiedCols[col] |= 1 << uint(row)
}

func (p *Position) calculateHash() uint64 {
	var h uint64
	for sq := Square(0); sq < 90; sq++ {
		pc := p.Mailbox[sq]
		if pc.IsNone() {
			continue
		}
		h ^= ZobristPiece(pc.Type, pc.Color, sq.Row(), sq.Col())
	}
	return h
}

func (p *Position) calculateScores() (redMat, redPST, blackMat, blackPST int32) {
	for sq := Square(0); sq < 90; sq++ {
		pc := p.Mailbox[sq]
		if pc.IsNone() {
			continue
		}
		val := PieceValue(pc.Type)
		pst := PSTValue(pc.Type, pc.Color, sq.Row(), sq.Col())
		if pc.Color == Red {
			redMat += val
			redPST += pst
		} else {
			blackMat += val
			blackPST += pst
		}
	}
	return
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Mailbox[sq]
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Mailbox[sq].IsNone()
}

// ColorBitboard returns the union of all of a color's pieces.
func (p *Position) ColorBitboard(c Color) Bitboard {
	var bb Bitboard
	for pt := 0; pt < 7; pt++ {
		bb = bb.Or(p.Bitboards[c.Index()*7+pt])
	}
	return bb
}

// PieceBitboard returns the bitboard for one (color, type) combination.
func (p *Position) PieceBitboard(c Color, pt PieceType) Bitboard {
	return p.Bitboards[bitboardIndex(c, pt)]
}

// GeneralSquare returns the square of c's general, or NoSquare if absent
// (an invalid intermediate state; callers should treat this as "in check").
func (p *Position) GeneralSquare(c Color) Square {
	bb := p.PieceBitboard(c, General)
	return Square(bb.TrailingZeros())
}

func (p *Position) addPiece(pt PieceType, c Color, sq Square) {
	idx := bitboardIndex(c, pt)
	p.Bitboards[idx] = p.Bitboards[idx].Set(sq)
	p.Occupied = p.Occupied.Set(sq)
	p.Mailbox[sq] = Piece{Type: pt, Color: c}
	p.OccupiedRows[sq.Row()] |= 1 << uint(sq.Col())
	p.OccupiedCols[sq.Col()] |= 1 << uint(sq.Row())
}

func (p *Position) removePiece(pt PieceType, c Color, sq Square) {
	idx := bitboardIndex(c, pt)
	p.Bitboards[idx] = p.Bitboards[idx].Clear(sq)
	p.Occupied = p.Occupied.Clear(sq)
	p.Mailbox[sq] = NoPiece
	p.OccupiedRows[sq.Row()] &^= 1 << uint(sq.Col())
	p.OccupiedCols[sq.Col()] &^= 1 << uint(sq.Row())
}

// ApplyMove mutates the board incrementally: remove the source piece's key
// and score contribution, remove a captured piece's if present, add the
// destination contribution, toggle the side key, and update every
// redundant representation. Returns the captured piece (NoPiece if none)
// so the caller can restore it on undo.
func (p *Position) ApplyMove(m Move, side Color) Piece {
	from, to := m.From().Square(), m.To().Square()
	pc := p.Mailbox[from]
	captured := p.Mailbox[to]

	p.ZobristHash ^= ZobristPiece(pc.Type, pc.Color, from.Row(), from.Col())
	p.subScore(pc, from)
	p.removePiece(pc.Type, pc.Color, from)

	if !captured.IsNone() {
		p.ZobristHash ^= ZobristPiece(captured.Type, captured.Color, to.Row(), to.Col())
		p.subScore(captured, to)
		p.removePiece(captured.Type, captured.Color, to)
	}

	p.addPiece(pc.Type, pc.Color, to)
	p.ZobristHash ^= ZobristPiece(pc.Type, pc.Color, to.Row(), to.Col())
	p.addScore(pc, to)

	p.ZobristHash ^= ZobristSideToMove()

	return captured
}

// UndoMove reverses ApplyMove exactly, given the move and the piece it
// captured (NoPiece if none). side is the mover's color (the side that
// made the move being undone).
func (p *Position) UndoMove(m Move, captured Piece, side Color) {
	from, to := m.From().Square(), m.To().Square()
	pc := Piece{Type: p.Mailbox[to].Type, Color: side}

	p.ZobristHash ^= ZobristSideToMove()

	p.ZobristHash ^= ZobristPiece(pc.Type, pc.Color, to.Row(), to.Col())
	p.subScore(pc, to)
	p.removePiece(pc.Type, pc.Color, to)

	if !captured.IsNone() {
		p.addPiece(captured.Type, captured.Color, to)
		p.ZobristHash ^= ZobristPiece(captured.Type, captured.Color, to.Row(), to.Col())
		p.addScore(captured, to)
	}

	p.addPiece(pc.Type, pc.Color, from)
	p.ZobristHash ^= ZobristPiece(pc.Type, pc.Color, from.Row(), from.Col())
	p.addScore(pc, from)
}

// ApplyNullMove toggles only the side-to-move key; its own inverse.
func (p *Position) ApplyNullMove() {
	p.ZobristHash ^= ZobristSideToMove()
}

func (p *Position) addScore(pc Piece, sq Square) {
	val := PieceValue(pc.Type)
	pst := PSTValue(pc.Type, pc.Color, sq.Row(), sq.Col())
	if pc.Color == Red {
		p.RedMaterial += val
		p.RedPST += pst
	} else {
		p.BlackMaterial += val
		p.BlackPST += pst
	}
}

func (p *Position) subScore(pc Piece, sq Square) {
	val := PieceValue(pc.Type)
	pst := PSTValue(pc.Type, pc.Color, sq.Row(), sq.Col())
	if pc.Color == Red {
		p.RedMaterial -= val
		p.RedPST -= pst
	} else {
		p.BlackMaterial -= val
		p.BlackPST -= pst
	}
}

// Copy returns a deep value copy; Position contains only arrays and
// scalars, so a plain dereference-assignment is a full, independent copy.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}
