package mutate

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pkmn-tools/dexctl/internal/state"
)

// ExportVersion tags the snapshot format. Version 3 carries all three
// state blobs.
const ExportVersion = 3

// ErrBadImport rejects an import document that does not parse to an
// object. State is left untouched on failure.
var ErrBadImport = errors.New("import file is not a valid export document")

// Snapshot is the versioned export document. Export always carries all
// three state keys, even when empty, so importing a fresh-state export
// resets the target wholesale. Import tolerates any subset of the three
// keys being present.
type Snapshot struct {
	ExportedAt  string                       `json:"exportedAt"`
	Version     int                          `json:"version"`
	Collection  map[string]bool              `json:"collection"`
	DexStatus   map[int]bool                 `json:"dexStatus"`
	Collections map[string]*state.Collection `json:"collections"`
}

// Export produces a serializable snapshot of all three state blobs.
func (e *Engine) Export() Snapshot {
	return Snapshot{
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Version:     ExportVersion,
		Collection:  e.State.Collection,
		DexStatus:   e.State.DexStatus,
		Collections: e.State.Collections,
	}
}

// ExportJSON renders the snapshot as indented JSON.
func (e *Engine) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(e.Export(), "", "  ")
}

// Import replaces each state blob present in the document wholesale,
// re-runs wishlist initialization, and persists all three blobs. On a
// malformed document the state is left untouched.
func (e *Engine) Import(data []byte) ([]Patch, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImport, err)
	}
	if snap.Collection != nil {
		e.State.Collection = snap.Collection
	}
	if snap.DexStatus != nil {
		e.State.DexStatus = snap.DexStatus
	}
	if snap.Collections != nil {
		e.State.Collections = snap.Collections
	}
	e.State.Normalize()
	e.State.InitWishlist()
	if err := e.SaveAll(); err != nil {
		return nil, err
	}
	return []Patch{
		fullRerender(ScopeCatalog),
		fullRerender(ScopeDex),
		fullRerender(ScopeCollections),
	}, nil
}
