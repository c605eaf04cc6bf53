package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"xiangqi/internal/board"
)

// Storage keys
const (
	keySettings    = "engine_settings"
	keyStats       = "match_stats"
	keyFirstLaunch = "first_launch"
)

// EngineSettings is a persisted snapshot of the tunable knobs a caller
// wants to survive a restart. It deliberately mirrors a subset of
// engine.Config by field name rather than embedding it, since the core
// search kernel never imports this package (see §5/§10): the command-line
// driver is the sole place that converts between the two.
type EngineSettings struct {
	TTSizeMB          int       `json:"tt_size_mb"`
	PruningMethod     int       `json:"pruning_method"`
	PruningMultiplier float64   `json:"pruning_multiplier"`
	DepthLimit        int       `json:"depth_limit"`
	TimeLimitMs       int64     `json:"time_limit_ms"`
	BookPath          string    `json:"book_path"`
	LastUpdated       time.Time `json:"last_updated"`
}

// DefaultSettings returns the engine settings a fresh installation starts
// with.
func DefaultSettings() *EngineSettings {
	return &EngineSettings{
		TTSizeMB:          64,
		PruningMethod:     1,
		PruningMultiplier: 1.0,
		DepthLimit:        8,
		TimeLimitMs:       5000,
		LastUpdated:       time.Now(),
	}
}

// MatchStats accumulates outcomes across every recorded match.
type MatchStats struct {
	GamesPlayed      int           `json:"games_played"`
	RedWins          int           `json:"red_wins"`
	BlackWins        int           `json:"black_wins"`
	Draws            int           `json:"draws"`
	TotalSearchNodes uint64        `json:"total_search_nodes"`
	TotalPlayTime    time.Duration `json:"total_play_time"`
	LongestWinStreak int           `json:"longest_win_streak"`
	CurrentStreak    int           `json:"current_streak"`
}

// NewMatchStats returns empty match statistics.
func NewMatchStats() *MatchStats {
	return &MatchStats{}
}

// MatchResult describes one completed match, for RecordMatch.
type MatchResult struct {
	Draw        bool
	Winner      board.Color // meaningful only when !Draw
	SearchNodes uint64
	Duration    time.Duration
}

// Store wraps BadgerDB for persisting EngineSettings and MatchStats.
type Store struct {
	db *badger.DB
}

// Open creates or opens the store at the platform data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		log.Errorf("resolving database directory: %v", err)
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens (creating if needed) a store at an explicit directory,
// bypassing the platform data-directory lookup — used by callers that
// accept a store path on the command line.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		log.Errorf("opening store at %s: %v", dir, err)
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch reports whether this is the first time the store has been
// opened.
func (s *Store) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete records that first-launch setup has finished.
func (s *Store) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SaveSettings persists the engine settings, stamping LastUpdated.
func (s *Store) SaveSettings(settings *EngineSettings) error {
	settings.LastUpdated = time.Now()

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySettings), data)
	})
}

// LoadSettings loads the persisted engine settings, falling back to
// DefaultSettings when none are stored or the record fails to decode.
func (s *Store) LoadSettings() (*EngineSettings, error) {
	settings := DefaultSettings()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySettings))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, settings)
		})
	})
	if err != nil {
		log.Errorf("loading engine settings, falling back to defaults: %v", err)
		return DefaultSettings(), nil
	}

	return settings, nil
}

// SaveStats persists match statistics.
func (s *Store) SaveStats(stats *MatchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads persisted match statistics, falling back to empty stats
// when none are stored or the record fails to decode.
func (s *Store) LoadStats() (*MatchStats, error) {
	stats := NewMatchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if err != nil {
		log.Errorf("loading match stats, falling back to empty stats: %v", err)
		return NewMatchStats(), nil
	}

	return stats, nil
}

// RecordMatch loads the current stats, folds result into them, and saves
// the result back.
func (s *Store) RecordMatch(result MatchResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration
	stats.TotalSearchNodes += result.SearchNodes

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Winner == board.Red:
		stats.RedWins++
		stats.CurrentStreak++
	case result.Winner == board.Black:
		stats.BlackWins++
		stats.CurrentStreak++
	}
	if stats.CurrentStreak > stats.LongestWinStreak {
		stats.LongestWinStreak = stats.CurrentStreak
	}

	return s.SaveStats(stats)
}

// WinRate returns the combined Red+Black win rate as a percentage (0-100).
func (s *MatchStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.RedWins+s.BlackWins) / float64(s.GamesPlayed) * 100
}
