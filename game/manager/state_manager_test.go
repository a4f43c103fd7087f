package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager()
	if sm.State() != Running {
		t.Fatalf("Expected running, got %v", sm.State())
	}
	if sm.Resume() {
		t.Error("Expected resume while running to be a no-op")
	}
	if !sm.Pause() || sm.State() != Paused {
		t.Errorf("Expected paused, got %v", sm.State())
	}
	if sm.Pause() {
		t.Error("Expected second pause to be a no-op")
	}
	if !sm.Resume() || sm.State() != Running {
		t.Errorf("Expected running, got %v", sm.State())
	}

	sm.Finish(4)
	if sm.State() != Over {
		t.Errorf("Expected over, got %v", sm.State())
	}
	if sm.Pause() {
		t.Error("Expected pause after game over to be rejected")
	}
	sm.Restart()
	sm.Finish(2)
	if sm.GetHighScore() != 4 {
		t.Errorf("Expected high score 4, got %d", sm.GetHighScore())
	}
	if h := sm.GetScoreHistory(); len(h) != 2 || h[0] != 4 || h[1] != 2 {
		t.Errorf("Expected history [4 2], got %v", h)
	}
}

func TestScoreHistoryBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxScoreHistory+10; i++ {
		sm.AddToHistory(i)
	}
	h := sm.GetScoreHistory()
	if len(h) != maxScoreHistory {
		t.Fatalf("Expected %d entries, got %d", maxScoreHistory, len(h))
	}
	if h[0] != 10 {
		t.Errorf("Expected oldest entries to drop, first is %d", h[0])
	}
}

func TestStatsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	sm := NewStateManager()
	sm.Finish(7)
	sm.Finish(3)
	if err := sm.SaveStats(path); err != nil {
		t.Fatalf("SaveStats: %v", err)
	}

	loaded := NewStateManager()
	if err := loaded.LoadStats(path); err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if loaded.GetHighScore() != 7 {
		t.Errorf("Expected high score 7, got %d", loaded.GetHighScore())
	}
	if h := loaded.GetScoreHistory(); len(h) != 2 {
		t.Errorf("Expected 2 history entries, got %v", h)
	}

	if err := loaded.LoadStats(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSummary(t *testing.T) {
	sm := NewStateManager()
	if got := sm.Summary(); got != (Summary{}) {
		t.Errorf("Expected empty summary, got %+v", got)
	}

	for _, score := range []int{4, 1, 7} {
		sm.AddToHistory(score)
	}
	got := sm.Summary()
	if got.GamesPlayed != 3 || got.MaxScore != 7 || got.MedianScore != 4 || got.AverageScore != 4 {
		t.Errorf("Expected 3 games, max 7, median 4, average 4, got %+v", got)
	}

	sm.AddToHistory(2)
	if got := sm.Summary(); got.MedianScore != 3 || got.AverageScore != 3.5 {
		t.Errorf("Expected median 3 and average 3.5, got %+v", got)
	}
	if h := sm.GetScoreHistory(); h[0] != 4 || h[3] != 2 {
		t.Errorf("Expected history order kept, got %v", h)
	}
}

// TestLoadStatsTrimsHistory keeps only the newest entries of an oversized file
func TestLoadStatsTrimsHistory(t *testing.T) {
	stats := GameStats{HighScore: 9}
	for i := 0; i < maxScoreHistory+50; i++ {
		stats.ScoreHistory = append(stats.ScoreHistory, i)
	}
	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	sm := NewStateManager()
	if err := sm.LoadStats(path); err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	h := sm.GetScoreHistory()
	if len(h) != maxScoreHistory {
		t.Fatalf("Expected %d entries, got %d", maxScoreHistory, len(h))
	}
	if h[0] != 50 || h[len(h)-1] != maxScoreHistory+49 {
		t.Errorf("Expected newest entries 50..%d, got %d..%d", maxScoreHistory+49, h[0], h[len(h)-1])
	}

	sm.AddToHistory(-1)
	if h := sm.GetScoreHistory(); len(h) != maxScoreHistory || h[len(h)-1] != -1 {
		t.Errorf("Expected bounded history ending in -1, got len %d", len(h))
	}
}
