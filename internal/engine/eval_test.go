package engine

import (
	"testing"

	"xiangqi/internal/board"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	pos := board.NewPosition()
	score := Evaluate(pos, DefaultWeights())
	if score != 0 {
		t.Errorf("starting position should evaluate to 0 from Red's perspective, got %d", score)
	}
}

func TestEvaluateRewardsMaterialAdvantage(t *testing.T) {
	pos, _, err := board.FromFEN("4k4/9/9/9/9/9/9/4C4/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}
	score := Evaluate(pos, DefaultWeights())
	if score <= 0 {
		t.Errorf("an extra red cannon should score positive for Red, got %d", score)
	}
}

func TestKingSafetyPenalizesExposedFile(t *testing.T) {
	// Black chariot lined up on Red's general's file with nothing between.
	exposed, _, err := board.FromFEN("4r4/9/9/9/9/9/9/9/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}
	// Same, but a red advisor interposes and breaks the line.
	shielded, _, err := board.FromFEN("4r4/9/9/9/9/9/9/9/4A4/4K4 w")
	if err != nil {
		t.Fatal(err)
	}

	w := DefaultWeights()
	exposedScore := Evaluate(exposed, w)
	shieldedScore := Evaluate(shielded, w)
	if exposedScore >= shieldedScore {
		t.Errorf("an exposed king-file should score worse for Red than a shielded one: exposed=%d shielded=%d", exposedScore, shieldedScore)
	}
}

func TestStructureBonusForCenterElephant(t *testing.T) {
	withElephant, _, err := board.FromFEN("4k4/9/9/9/9/9/9/4B4/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}
	without, _, err := board.FromFEN("4k4/9/9/9/9/9/9/9/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}

	w := DefaultWeights()
	gotBonus := Evaluate(withElephant, w) - board.PieceValue(board.Elephant)
	baseline := Evaluate(without, w)
	if gotBonus <= baseline {
		t.Errorf("a centered elephant should add a structure bonus beyond its material value")
	}
}

func TestMobilityFavorsUnblockedChariot(t *testing.T) {
	open, _, err := board.FromFEN("4k4/9/9/9/9/4R4/9/9/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}
	blocked, _, err := board.FromFEN("4k4/9/9/9/4p4/4R4/4P4/9/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}

	w := DefaultWeights()
	openScore := Evaluate(open, w)
	blockedScore := Evaluate(blocked, w)
	if openScore <= blockedScore {
		t.Errorf("an unobstructed chariot should score higher on mobility than a boxed-in one: open=%d blocked=%d", openScore, blockedScore)
	}
}
