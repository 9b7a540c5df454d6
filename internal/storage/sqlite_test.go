package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []ScoreEntry{
		{Score: 100, Lines: 4, Level: 1, Words: 12, Difficulty: "normal"},
		{Score: 50, Lines: 2, Level: 1, Words: 6, Difficulty: "normal"},
		{Score: 200, Lines: 8, Level: 2, Words: 20, Difficulty: "normal"},
		{Score: 500, Lines: 15, Level: 3, Words: 40, Difficulty: "hard"},
	}
	for _, e := range sessions {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", e, err)
		}
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 normal scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Lines != 8 || scores[0].Words != 20 {
		t.Errorf("Session details lost: %+v", scores[0])
	}

	// Empty difficulty matches everything
	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(\"\") failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 total scores, got %d", len(all))
	}
	if all[0].Difficulty != "hard" {
		t.Errorf("Expected hard session on top, got %+v", all[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Score: (i + 1) * 100, Difficulty: "normal"})
	}

	scores, err := store.TopScores("", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveScore(ScoreEntry{Score: 100, Difficulty: "normal"})
	store.SaveScore(ScoreEntry{Score: 300, Difficulty: "hard"})
	store.SaveScore(ScoreEntry{Score: 200, Difficulty: "normal"})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Score: 100, Difficulty: "normal"})
	store.SaveScore(ScoreEntry{Score: 200, Difficulty: "hard"})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store has zeroed stats, not an error
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore(ScoreEntry{Score: 100, Lines: 4, Words: 10, Difficulty: "normal"})
	store.SaveScore(ScoreEntry{Score: 300, Lines: 10, Words: 25, Difficulty: "normal"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalLines != 14 || stats.TotalWords != 35 {
		t.Errorf("Totals = %d lines / %d words, want 14/35", stats.TotalLines, stats.TotalWords)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
