package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game, player string
		score        int
	}{
		{"brawler", "P1", 100},
		{"brawler", "P2", 50},
		{"brawler", "P1", 200},
		{"other", "P1", 500},
	} {
		if _, err := store.SaveScore(s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("brawler", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[2].Player != "P2" {
		t.Errorf("Expected lowest score from P2, got %q", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be parsed")
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "P1", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("brawler")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("brawler", "P1", 100)
	store.SaveScore("brawler", "P2", 300)
	store.SaveScore("brawler", "P1", 200)

	high, err = store.HighScore("brawler")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Outcome: "defeat", Level: 2, Score1: 40, Score2: 30, Frames: 900},
		{Outcome: "victory", Level: 5, Score1: 420, Score2: 380, Frames: 12000},
		{Outcome: "defeat", Level: 3, Score1: 150, Score2: 10, Frames: 3000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("brawler", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("brawler", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Total() != 800 || top[1].Total() != 160 || top[2].Total() != 70 {
		t.Errorf("Runs not ordered by team score: %v", top)
	}
	if top[0].Outcome != "victory" || top[0].Level != 5 || top[0].Frames != 12000 {
		t.Errorf("Unexpected best run: %+v", top[0])
	}

	recent, err := store.RecentRuns("brawler", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Total() != 160 {
		t.Errorf("Expected newest run first, got %v", recent)
	}

	// Each run also stores one score per seat.
	scores, _ := store.AllScores("brawler")
	if len(scores) != 6 {
		t.Errorf("Expected 6 seat scores, got %d", len(scores))
	}
	if scores[0].Score != 420 || scores[0].Player != "P1" {
		t.Errorf("Unexpected top seat score: %+v", scores[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("brawler")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestTotal != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun("brawler", core.RunSummary{Outcome: "victory", Level: 5, Score1: 10, Score2: 20})
	store.SaveRun("brawler", core.RunSummary{Outcome: "defeat", Level: 2, Score1: 50, Score2: 0})

	stats, err = store.GetGameStats("brawler")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Victories != 1 || stats.BestTotal != 50 || stats.BestLevel != 5 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("brawler", core.RunSummary{Outcome: "defeat", Level: 1, Score1: 10})
	store.SaveScore("other", "P1", 300)

	if err := store.ClearScores("brawler"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("brawler", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.TopRuns("brawler", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other game scores should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "P2", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
