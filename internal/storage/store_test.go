package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkmn-tools/dexctl/internal/storage"
)

func TestWriteReadRoundTrip(t *testing.T) {
	s := storage.Open(t.TempDir())

	in := map[string]bool{"sv1-25": true, "sv1-26": true}
	if err := s.WriteJSON(storage.KeyCollection, in); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := map[string]bool{}
	s.ReadJSON(storage.KeyCollection, &out)
	if len(out) != 2 || !out["sv1-25"] {
		t.Errorf("ReadJSON = %v, want %v", out, in)
	}
}

func TestReadJSON_MissingKeyLeavesDefault(t *testing.T) {
	s := storage.Open(t.TempDir())

	out := map[string]bool{"seed": true}
	s.ReadJSON("no-such-key", &out)
	if len(out) != 1 || !out["seed"] {
		t.Errorf("ReadJSON on missing key changed out: %v", out)
	}
}

func TestReadJSON_CorruptBlobLeavesDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, storage.KeyDexStatus), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := storage.Open(dir)
	out := map[int]bool{25: true}
	s.ReadJSON(storage.KeyDexStatus, &out)
	if len(out) != 1 || !out[25] {
		t.Errorf("ReadJSON on corrupt blob changed out: %v", out)
	}
}

func TestReadJSON_WrongShapeLeavesDefault(t *testing.T) {
	dir := t.TempDir()
	// Valid JSON, but the second value is not a bool, so decoding fails
	// partway through. The seeded default must survive intact.
	blob := []byte(`{"sv1-25":true,"sv1-26":"yes"}`)
	if err := os.WriteFile(filepath.Join(dir, storage.KeyCollection), blob, 0o644); err != nil {
		t.Fatal(err)
	}

	s := storage.Open(dir)
	out := map[string]bool{"seed": true}
	s.ReadJSON(storage.KeyCollection, &out)
	if len(out) != 1 || !out["seed"] {
		t.Errorf("ReadJSON on mistyped blob changed out: %v", out)
	}
}

func TestErase(t *testing.T) {
	s := storage.Open(t.TempDir())

	if err := s.WriteJSON("k", 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Erase("k"); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	got := 0
	s.ReadJSON("k", &got)
	if got != 0 {
		t.Errorf("blob survived Erase: %d", got)
	}
}

func TestErase_MissingKey(t *testing.T) {
	s := storage.Open(t.TempDir())
	if err := s.Erase("never-written"); err != nil {
		t.Errorf("Erase on missing key: %v", err)
	}
}
