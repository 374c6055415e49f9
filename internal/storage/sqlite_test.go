package storage

import (
	"bytes"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult("stalemate", 192, 210); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("won", 3072, 540); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("stalemate", 384, 300); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Sorted by best tile descending
	if results[0].BestTile != 3072 {
		t.Errorf("Expected best result first, got tile %d", results[0].BestTile)
	}
	if results[0].Outcome != "won" {
		t.Errorf("Expected outcome won, got %q", results[0].Outcome)
	}
	if results[1].BestTile != 384 || results[2].BestTile != 192 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("stalemate", 3*(1<<i), 100)
	}

	results, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
}

func TestStoreTopResultsTieBrokenByMoves(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("won", 3072, 600)
	store.SaveResult("won", 3072, 420)

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if results[0].Moves != 420 {
		t.Errorf("Expected fewest-moves win first, got %d moves", results[0].Moves)
	}
}

func TestStoreBestTile(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestTile()
	if err != nil {
		t.Fatalf("BestTile() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestTile() on empty store = %d, want 0", best)
	}

	store.SaveResult("stalemate", 96, 80)
	store.SaveResult("stalemate", 768, 350)

	best, err = store.BestTile()
	if err != nil {
		t.Fatalf("BestTile() failed: %v", err)
	}
	if best != 768 {
		t.Errorf("BestTile() = %d, want 768", best)
	}
}

func TestStoreSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// No session saved yet
	state, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if state != nil {
		t.Errorf("LoadSession() on empty store = %v, want nil", state)
	}

	blob := []byte("cells:\n- [3, 0]\n- [0, 6]\nmoves: 4\n")
	if err := store.SaveSession(blob); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	state, err = store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if !bytes.Equal(state, blob) {
		t.Errorf("LoadSession() = %q, want %q", state, blob)
	}
}

func TestStoreSessionOverwrite(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSession([]byte("first")); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if err := store.SaveSession([]byte("second")); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	state, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if string(state) != "second" {
		t.Errorf("LoadSession() = %q, want %q", state, "second")
	}
}

func TestStoreClearSession(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSession([]byte("in progress")); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}

	state, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if state != nil {
		t.Errorf("LoadSession() after clear = %v, want nil", state)
	}
}
