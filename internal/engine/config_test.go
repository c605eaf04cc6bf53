package engine

import (
	"strings"
	"testing"
)

func TestLoadConfigJSONDefaultOnEmptyObject(t *testing.T) {
	cfg, err := LoadConfigJSON(strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("empty object should decode to defaults, got %+v", cfg)
	}
}

func TestLoadConfigJSONAbsoluteIntegers(t *testing.T) {
	cfg, err := LoadConfigJSON(strings.NewReader(`{"val_pawn": 123, "val_king": 9999}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ValPawn != 123 || cfg.ValKing != 9999 {
		t.Errorf("absolute decode should apply literal values, got %+v", cfg)
	}
	if cfg.ValRook != DefaultConfig().ValRook {
		t.Errorf("fields absent from the payload should keep their default")
	}
}

func TestLoadConfigJSONScaledFallback(t *testing.T) {
	cfg, err := LoadConfigJSON(strings.NewReader(`{"val_pawn": 1.5, "score_hash_move": 0.5}`))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.ValPawn != int32(float64(def.ValPawn)*1.5) {
		t.Errorf("val_pawn should scale to 1.5x default, got %d", cfg.ValPawn)
	}
	if cfg.ScoreHashMove != int32(float64(def.ScoreHashMove)*0.5) {
		t.Errorf("score_hash_move should scale to 0.5x default, got %d", cfg.ScoreHashMove)
	}
	if cfg.ValRook != def.ValRook {
		t.Errorf("unscaled fields should keep their default in scale mode")
	}
}

func TestLoadConfigJSONInvalidPayload(t *testing.T) {
	if _, err := LoadConfigJSON(strings.NewReader("{ not json }")); err == nil {
		t.Fatal("expected an error decoding malformed JSON")
	}
}

func TestConfigWeightsProjection(t *testing.T) {
	cfg := DefaultConfig()
	w := cfg.Weights()
	if w.MobilityRook != cfg.MobilityWeightRook || w.BonusConnectedAdvisors != cfg.BonusConnectedAdvisors {
		t.Error("Weights() should carry over the evaluator-relevant knobs unchanged")
	}
}
