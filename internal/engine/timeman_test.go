package engine

import (
	"testing"
	"time"
)

func TestClockLimitSuddenDeathShrinksAsClockRuns(t *testing.T) {
	generous := ClockLimit(5*time.Minute, 0, 0, 10)
	tight := ClockLimit(5*time.Second, 0, 0, 10)

	if generous.TimeMs <= tight.TimeMs {
		t.Fatalf("expected a fuller clock to allocate more time: generous=%dms tight=%dms", generous.TimeMs, tight.TimeMs)
	}
}

func TestClockLimitNeverExceedsRemainingTime(t *testing.T) {
	limit := ClockLimit(2*time.Second, 0, 1, 0)
	if time.Duration(limit.TimeMs)*time.Millisecond > 2*time.Second {
		t.Fatalf("allocated %dms from a 2s clock", limit.TimeMs)
	}
}

func TestClockLimitRespectsMovesToGo(t *testing.T) {
	fewMoves := ClockLimit(time.Minute, 0, 2, 0)
	manyMoves := ClockLimit(time.Minute, 0, 40, 0)

	if fewMoves.TimeMs <= manyMoves.TimeMs {
		t.Fatalf("expected fewer moves-to-go to allocate more time per move: fewMoves=%dms manyMoves=%dms", fewMoves.TimeMs, manyMoves.TimeMs)
	}
}

func TestClockLimitWithNoTimeLeftStopsImmediately(t *testing.T) {
	limit := ClockLimit(0, 0, 0, 0)
	if limit.TimeMs != 0 {
		t.Fatalf("expected a zero budget with no time left, got %dms", limit.TimeMs)
	}
}
