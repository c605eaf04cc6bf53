package engine

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
)

// Config is a plain value bag holding every tunable search and evaluation
// knob. A zero Config is not meaningful; always start from DefaultConfig.
type Config struct {
	ValPawn    int32 `json:"val_pawn"     toml:"val_pawn"`
	ValAdvisor int32 `json:"val_advisor"  toml:"val_advisor"`
	ValElephant int32 `json:"val_elephant" toml:"val_elephant"`
	ValHorse   int32 `json:"val_horse"    toml:"val_horse"`
	ValCannon  int32 `json:"val_cannon"   toml:"val_cannon"`
	ValRook    int32 `json:"val_rook"     toml:"val_rook"`
	ValKing    int32 `json:"val_king"     toml:"val_king"`

	ScoreHashMove     int32 `json:"score_hash_move"     toml:"score_hash_move"`
	ScoreCaptureBase  int32 `json:"score_capture_base"  toml:"score_capture_base"`
	ScoreKillerMove   int32 `json:"score_killer_move"   toml:"score_killer_move"`
	ScoreHistoryMax   int32 `json:"score_history_max"   toml:"score_history_max"`

	PruningMethod     int     `json:"pruning_method"     toml:"pruning_method"`
	PruningMultiplier float64 `json:"pruning_multiplier" toml:"pruning_multiplier"`

	ProbcutDepth     int   `json:"probcut_depth"     toml:"probcut_depth"`
	ProbcutMargin    int32 `json:"probcut_margin"    toml:"probcut_margin"`
	ProbcutReduction int   `json:"probcut_reduction" toml:"probcut_reduction"`

	MateScore int32 `json:"mate_score"  toml:"mate_score"`
	TTSizeMB  int   `json:"tt_size_mb"  toml:"tt_size_mb"`

	SingularExtensionMinDepth int   `json:"singular_extension_min_depth" toml:"singular_extension_min_depth"`
	SingularExtensionMargin   int32 `json:"singular_extension_margin"    toml:"singular_extension_margin"`

	KingExposedFilePenalty   int32 `json:"king_exposed_file_penalty"   toml:"king_exposed_file_penalty"`
	KingExposedCannonPenalty int32 `json:"king_exposed_cannon_penalty" toml:"king_exposed_cannon_penalty"`

	MobilityWeightRook   int32 `json:"mobility_weight_rook"   toml:"mobility_weight_rook"`
	MobilityWeightCannon int32 `json:"mobility_weight_cannon" toml:"mobility_weight_cannon"`
	MobilityWeightHorse  int32 `json:"mobility_weight_horse"  toml:"mobility_weight_horse"`

	BonusConnectedAdvisors  int32 `json:"bonus_connected_advisors"  toml:"bonus_connected_advisors"`
	BonusConnectedElephants int32 `json:"bonus_connected_elephants" toml:"bonus_connected_elephants"`
}

// DefaultConfig returns the engine's stock knob values.
func DefaultConfig() Config {
	return Config{
		ValPawn:     100,
		ValAdvisor:  200,
		ValElephant: 200,
		ValHorse:    450,
		ValCannon:   500,
		ValRook:     1000,
		ValKing:     10000,

		ScoreHashMove:    2_000_000,
		ScoreCaptureBase: 900_000,
		ScoreKillerMove:  1_200_000,
		ScoreHistoryMax:  800_000,

		PruningMethod:     1,
		PruningMultiplier: 1.0,

		ProbcutDepth:     5,
		ProbcutMargin:    200,
		ProbcutReduction: 4,

		MateScore: 30000,
		TTSizeMB:  64,

		SingularExtensionMinDepth: 6,
		SingularExtensionMargin:   50,

		KingExposedFilePenalty:   40,
		KingExposedCannonPenalty: 60,

		MobilityWeightRook:   4,
		MobilityWeightCannon: 3,
		MobilityWeightHorse:  2,

		BonusConnectedAdvisors:  10,
		BonusConnectedElephants: 10,
	}
}

// Weights projects the evaluator-relevant subset of Config into eval.go's
// Weights type.
func (c Config) Weights() Weights {
	return Weights{
		MobilityRook:             c.MobilityWeightRook,
		MobilityCannon:           c.MobilityWeightCannon,
		MobilityHorse:            c.MobilityWeightHorse,
		BonusConnectedAdvisors:   c.BonusConnectedAdvisors,
		BonusConnectedElephants:  c.BonusConnectedElephants,
		KingExposedFilePenalty:   c.KingExposedFilePenalty,
		KingExposedCannonPenalty: c.KingExposedCannonPenalty,
	}
}

// LoadConfigJSON decodes an engine configuration from JSON. It first tries
// an absolute decode straight into Config (whole integers); if that fails —
// typically because the payload carries fractional multipliers instead — it
// falls back to scale mode, where each present field is defaultValue*scale.
func LoadConfigJSON(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		log.Errorf("reading engine config: %v", err)
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}

	var scale struct {
		ValPawn     *float64 `json:"val_pawn"`
		ValAdvisor  *float64 `json:"val_advisor"`
		ValElephant *float64 `json:"val_elephant"`
		ValHorse    *float64 `json:"val_horse"`
		ValCannon   *float64 `json:"val_cannon"`
		ValRook     *float64 `json:"val_rook"`
		ValKing     *float64 `json:"val_king"`

		ScoreHashMove    *float64 `json:"score_hash_move"`
		ScoreCaptureBase *float64 `json:"score_capture_base"`
		ScoreKillerMove  *float64 `json:"score_killer_move"`
		ScoreHistoryMax  *float64 `json:"score_history_max"`

		PruningMethod     *float64 `json:"pruning_method"`
		PruningMultiplier *float64 `json:"pruning_multiplier"`

		ProbcutDepth     *float64 `json:"probcut_depth"`
		ProbcutMargin    *float64 `json:"probcut_margin"`
		ProbcutReduction *float64 `json:"probcut_reduction"`

		MateScore *float64 `json:"mate_score"`
		TTSizeMB  *float64 `json:"tt_size_mb"`

		SingularExtensionMinDepth *float64 `json:"singular_extension_min_depth"`
		SingularExtensionMargin   *float64 `json:"singular_extension_margin"`

		KingExposedFilePenalty   *float64 `json:"king_exposed_file_penalty"`
		KingExposedCannonPenalty *float64 `json:"king_exposed_cannon_penalty"`

		MobilityWeightRook   *float64 `json:"mobility_weight_rook"`
		MobilityWeightCannon *float64 `json:"mobility_weight_cannon"`
		MobilityWeightHorse  *float64 `json:"mobility_weight_horse"`

		BonusConnectedAdvisors  *float64 `json:"bonus_connected_advisors"`
		BonusConnectedElephants *float64 `json:"bonus_connected_elephants"`
	}
	if err := json.Unmarshal(data, &scale); err != nil {
		log.Errorf("decoding engine config, falling back to defaults: %v", err)
		return Config{}, err
	}

	def := DefaultConfig()
	cfg = def
	cfg.ValPawn = scaleInt32(def.ValPawn, scale.ValPawn)
	cfg.ValAdvisor = scaleInt32(def.ValAdvisor, scale.ValAdvisor)
	cfg.ValElephant = scaleInt32(def.ValElephant, scale.ValElephant)
	cfg.ValHorse = scaleInt32(def.ValHorse, scale.ValHorse)
	cfg.ValCannon = scaleInt32(def.ValCannon, scale.ValCannon)
	cfg.ValRook = scaleInt32(def.ValRook, scale.ValRook)
	cfg.ValKing = scaleInt32(def.ValKing, scale.ValKing)

	cfg.ScoreHashMove = scaleInt32(def.ScoreHashMove, scale.ScoreHashMove)
	cfg.ScoreCaptureBase = scaleInt32(def.ScoreCaptureBase, scale.ScoreCaptureBase)
	cfg.ScoreKillerMove = scaleInt32(def.ScoreKillerMove, scale.ScoreKillerMove)
	cfg.ScoreHistoryMax = scaleInt32(def.ScoreHistoryMax, scale.ScoreHistoryMax)

	cfg.PruningMethod = scaleInt(def.PruningMethod, scale.PruningMethod)
	cfg.PruningMultiplier = scaleFloat(def.PruningMultiplier, scale.PruningMultiplier)

	cfg.ProbcutDepth = scaleInt(def.ProbcutDepth, scale.ProbcutDepth)
	cfg.ProbcutMargin = scaleInt32(def.ProbcutMargin, scale.ProbcutMargin)
	cfg.ProbcutReduction = scaleInt(def.ProbcutReduction, scale.ProbcutReduction)

	cfg.MateScore = scaleInt32(def.MateScore, scale.MateScore)
	cfg.TTSizeMB = scaleInt(def.TTSizeMB, scale.TTSizeMB)

	cfg.SingularExtensionMinDepth = scaleInt(def.SingularExtensionMinDepth, scale.SingularExtensionMinDepth)
	cfg.SingularExtensionMargin = scaleInt32(def.SingularExtensionMargin, scale.SingularExtensionMargin)

	cfg.KingExposedFilePenalty = scaleInt32(def.KingExposedFilePenalty, scale.KingExposedFilePenalty)
	cfg.KingExposedCannonPenalty = scaleInt32(def.KingExposedCannonPenalty, scale.KingExposedCannonPenalty)

	cfg.MobilityWeightRook = scaleInt32(def.MobilityWeightRook, scale.MobilityWeightRook)
	cfg.MobilityWeightCannon = scaleInt32(def.MobilityWeightCannon, scale.MobilityWeightCannon)
	cfg.MobilityWeightHorse = scaleInt32(def.MobilityWeightHorse, scale.MobilityWeightHorse)

	cfg.BonusConnectedAdvisors = scaleInt32(def.BonusConnectedAdvisors, scale.BonusConnectedAdvisors)
	cfg.BonusConnectedElephants = scaleInt32(def.BonusConnectedElephants, scale.BonusConnectedElephants)

	return cfg, nil
}

func scaleInt32(defaultVal int32, scale *float64) int32 {
	if scale == nil {
		return defaultVal
	}
	return int32(float64(defaultVal) * *scale)
}

func scaleInt(defaultVal int, scale *float64) int {
	if scale == nil {
		return defaultVal
	}
	return int(float64(defaultVal) * *scale)
}

func scaleFloat(defaultVal float64, scale *float64) float64 {
	if scale == nil {
		return defaultVal
	}
	return defaultVal * *scale
}

// LoadConfigTOML reads an absolute-valued configuration from a TOML file, a
// human-editable alternative to LoadConfigJSON's two modes.
func LoadConfigTOML(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Errorf("decoding engine config %s, falling back to defaults: %v", path, err)
		return Config{}, err
	}
	return cfg, nil
}
