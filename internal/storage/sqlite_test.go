package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("meadow", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("crash", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("meadow", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	high, err := store.HighScore("crash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}

	high, err = store.HighScore("unknown")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for unknown game, got %d", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("meadow", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.ClearScores("meadow"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, err := store.TopScores("meadow", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestBlobRoundTrip(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadBlob("letter-crash-save")
	if err != nil {
		t.Fatalf("LoadBlob() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing key, got %q", got)
	}

	if err := store.SaveBlob("letter-crash-save", []byte(`{"stars":5}`)); err != nil {
		t.Fatalf("SaveBlob() failed: %v", err)
	}
	got, err = store.LoadBlob("letter-crash-save")
	if err != nil {
		t.Fatalf("LoadBlob() failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"stars":5}`)) {
		t.Errorf("LoadBlob() = %q", got)
	}

	// Upsert replaces in place
	if err := store.SaveBlob("letter-crash-save", []byte(`{"stars":9}`)); err != nil {
		t.Fatalf("SaveBlob() failed: %v", err)
	}
	got, _ = store.LoadBlob("letter-crash-save")
	if !bytes.Equal(got, []byte(`{"stars":9}`)) {
		t.Errorf("Upsert did not replace: %q", got)
	}
}

func TestDeleteBlob(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBlob("k", []byte("v")); err != nil {
		t.Fatalf("SaveBlob() failed: %v", err)
	}
	if err := store.DeleteBlob("k"); err != nil {
		t.Fatalf("DeleteBlob() failed: %v", err)
	}
	got, err := store.LoadBlob("k")
	if err != nil {
		t.Fatalf("LoadBlob() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Blob survived delete: %q", got)
	}

	if err := store.DeleteBlob("missing"); err != nil {
		t.Errorf("DeleteBlob(missing) failed: %v", err)
	}
}
