package storage

import (
	"os"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"xiangqi/internal/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "xiangqi-storage-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	opts := badger.DefaultOptions(tmpDir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("badger.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Store{db: db}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.TTSizeMB != 64 {
		t.Errorf("TTSizeMB = %d, want 64", s.TTSizeMB)
	}
	if s.PruningMethod != 1 {
		t.Errorf("PruningMethod = %d, want 1", s.PruningMethod)
	}
}

func TestSettingsRoundTripAcrossClose(t *testing.T) {
	store := openTestStore(t)

	want := DefaultSettings()
	want.TTSizeMB = 128
	want.BookPath = "/tmp/book.bin"
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got.TTSizeMB != want.TTSizeMB || got.BookPath != want.BookPath {
		t.Errorf("loaded settings = %+v, want tt_size_mb=%d book_path=%s", got, want.TTSizeMB, want.BookPath)
	}
}

func TestLoadSettingsFallsBackToDefaultsWhenAbsent(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got.TTSizeMB != DefaultSettings().TTSizeMB {
		t.Errorf("expected default settings when nothing stored, got %+v", got)
	}
}

func TestRecordMatchAccumulatesStats(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordMatch(MatchResult{Winner: board.Red, SearchNodes: 1000}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}
	if err := store.RecordMatch(MatchResult{Winner: board.Black, SearchNodes: 500}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}
	if err := store.RecordMatch(MatchResult{Draw: true}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", stats.GamesPlayed)
	}
	if stats.RedWins != 1 || stats.BlackWins != 1 || stats.Draws != 1 {
		t.Errorf("unexpected tallies: %+v", stats)
	}
	if stats.TotalSearchNodes != 1500 {
		t.Errorf("TotalSearchNodes = %d, want 1500", stats.TotalSearchNodes)
	}
	if rate := stats.WinRate(); rate < 66 || rate > 67 {
		t.Errorf("WinRate = %.2f, want ~66.67", rate)
	}
}

func TestIsFirstLaunch(t *testing.T) {
	store := openTestStore(t)

	first, err := store.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Error("expected first launch to be true before marking complete")
	}

	if err := store.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}

	first, err = store.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Error("expected first launch to be false after marking complete")
	}
}
