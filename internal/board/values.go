package board

// Piece values in centipawns, indexed by PieceType. These feed the board's
// incrementally maintained material sum as well as MVV-LVA move ordering.
const (
	ValGeneral  = 10000
	ValAdvisor  = 200
	ValElephant = 200
	ValHorse    = 450
	ValChariot  = 1000
	ValCannon   = 500
	ValSoldier  = 100
)

var pieceValue = [7]int32{
	General:  ValGeneral,
	Advisor:  ValAdvisor,
	Elephant: ValElephant,
	Horse:    ValHorse,
	Chariot:  ValChariot,
	Cannon:   ValCannon,
	Soldier:  ValSoldier,
}

// PieceValue returns the material value of a piece type.
func PieceValue(pt PieceType) int32 {
	return pieceValue[pt.Index()]
}

// Piece-square tables, written from Red's perspective with row 0 at Red's
// own back rank. Black's lookup mirrors the row (9-row) before indexing.
var (
	pstSoldier = [10][9]int32{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 10, 20, 10, 0, 0, 0},
		{20, 20, 20, 30, 40, 30, 20, 20, 20},
		{50, 60, 70, 80, 80, 80, 70, 60, 50},
		{70, 80, 90, 100, 100, 100, 90, 80, 70},
		{80, 90, 100, 110, 110, 110, 100, 90, 80},
		{90, 100, 110, 120, 120, 120, 110, 100, 90},
		{0, 0, 0, 20, 20, 20, 0, 0, 0},
	}
	pstAdvisor = [10][9]int32{
		{0, 0, 0, 20, 0, 20, 0, 0, 0},
		{0, 0, 0, 0, 30, 0, 0, 0, 0},
		{0, 0, 0, 20, 0, 20, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	pstElephant = [10][9]int32{
		{0, 0, 10, 0, 0, 0, 10, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 30, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 10, 0, 0, 0, 10, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	pstHorse = [10][9]int32{
		{-10, -10, -10, 0, -5, 0, -10, -10, -10},
		{-10, 0, 0, 5, 5, 5, 0, 0, -10},
		{0, 0, 10, 10, 10, 10, 10, 0, 0},
		{0, 10, 20, 30, 30, 30, 20, 10, 0},
		{0, 10, 20, 30, 30, 30, 20, 10, 0},
		{5, 15, 25, 35, 35, 35, 25, 15, 5},
		{5, 20, 30, 40, 40, 40, 30, 20, 5},
		{10, 25, 30, 40, 40, 40, 30, 25, 10},
		{0, 10, 20, 20, 20, 20, 20, 10, 0},
		{-10, -10, -5, -5, -5, -5, -5, -10, -10},
	}
	pstCannon = [10][9]int32{
		{0, 0, 10, 0, 5, 0, 10, 0, 0},
		{0, 10, 0, 0, 0, 0, 0, 10, 0},
		{0, 20, 0, 10, 0, 10, 0, 20, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{10, 20, 30, 20, 20, 20, 30, 20, 10},
		{10, 20, 30, 20, 20, 20, 30, 20, 10},
		{10, 20, 30, 20, 20, 20, 30, 20, 10},
	}
	pstChariot = [10][9]int32{
		{0, 5, 5, 5, 0, 5, 5, 5, 0},
		{0, 10, 0, 0, 0, 0, 0, 10, 0},
		{0, 10, 0, 0, 0, 0, 0, 10, 0},
		{0, 10, 0, 0, 0, 0, 0, 10, 0},
		{10, 20, 20, 20, 20, 20, 20, 20, 10},
		{10, 30, 30, 30, 30, 30, 30, 30, 10},
		{10, 30, 30, 30, 30, 30, 30, 30, 10},
		{10, 30, 30, 30, 30, 30, 30, 30, 10},
		{20, 40, 40, 40, 40, 40, 40, 40, 20},
		{30, 50, 50, 50, 50, 50, 50, 50, 30},
	}
	pstGeneral = [10][9]int32{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, -10, -20, -10, 0, 0, 0},
		{0, 0, 0, -10, -20, -10, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
)

// PSTValue returns the piece-square bonus for a piece of the given type and
// color sitting at (row, col). Black's row is mirrored before lookup since
// every table is authored from Red's perspective.
func PSTValue(pt PieceType, c Color, row, col int) int32 {
	r := row
	if c == Black {
		r = 9 - row
	}
	switch pt {
	case Soldier:
		return pstSoldier[r][col]
	case Horse:
		return pstHorse[r][col]
	case Chariot:
		return pstChariot[r][col]
	case Cannon:
		return pstCannon[r][col]
	case Advisor:
		return pstAdvisor[r][col]
	case Elephant:
		return pstElephant[r][col]
	case General:
		return pstGeneral[r][col]
	default:
		return 0
	}
}
