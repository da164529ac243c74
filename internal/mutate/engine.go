package mutate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkmn-tools/dexctl/internal/species"
	"github.com/pkmn-tools/dexctl/internal/state"
	"github.com/pkmn-tools/dexctl/internal/storage"
)

// Mutation errors, surfaced to the user as local warnings, never crashes.
var (
	// ErrEmptyName rejects collection creation with a blank name.
	ErrEmptyName = errors.New("collection name must not be empty")
	// ErrProtectedCollection rejects deletion of the wishlist.
	ErrProtectedCollection = errors.New("the wishlist cannot be deleted")
	// ErrNoCollection is returned for operations on an unknown collection.
	ErrNoCollection = errors.New("no such collection")
)

// Engine is the only code path allowed to change ownership or collection
// state. Every mutation persists its blob before returning, so storage is
// never behind what the returned patches will draw.
type Engine struct {
	State *state.Store
	Store *storage.Store
}

// New creates an Engine over the given state container and store.
func New(st *state.Store, store *storage.Store) *Engine {
	return &Engine{State: st, Store: store}
}

// --- flat card ownership ---

// SetOwned marks a card owned. Idempotent.
func (e *Engine) SetOwned(cardID string) ([]Patch, error) {
	if e.State.Collection[cardID] {
		return nil, nil
	}
	e.State.Collection[cardID] = true
	if err := e.saveCollection(); err != nil {
		return nil, err
	}
	return e.cardPatches(cardID), nil
}

// SetUnowned removes a card from the ownership mapping. Idempotent;
// deletion removes the key so no false entries persist.
func (e *Engine) SetUnowned(cardID string) ([]Patch, error) {
	if _, ok := e.State.Collection[cardID]; !ok {
		return nil, nil
	}
	delete(e.State.Collection, cardID)
	if err := e.saveCollection(); err != nil {
		return nil, err
	}
	return e.cardPatches(cardID), nil
}

func (e *Engine) cardPatches(cardID string) []Patch {
	patches := []Patch{patchItem(ScopeCatalog, cardID)}
	if card := e.State.CardIndex[cardID]; card != nil {
		patches = append(patches, patchAggregate(ScopeCatalog, card.SetID))
	}
	patches = append(patches, patchAggregate(ScopeCatalog, ""))
	return patches
}

// --- dex registration ---

// SetRegistered marks a species registered. Idempotent.
func (e *Engine) SetRegistered(speciesID int) ([]Patch, error) {
	if e.State.DexStatus[speciesID] {
		return nil, nil
	}
	e.State.DexStatus[speciesID] = true
	if err := e.saveDex(); err != nil {
		return nil, err
	}
	return dexPatches(speciesID), nil
}

// SetUnregistered removes a species from the dex mapping. Idempotent.
func (e *Engine) SetUnregistered(speciesID int) ([]Patch, error) {
	if _, ok := e.State.DexStatus[speciesID]; !ok {
		return nil, nil
	}
	delete(e.State.DexStatus, speciesID)
	if err := e.saveDex(); err != nil {
		return nil, err
	}
	return dexPatches(speciesID), nil
}

func dexPatches(speciesID int) []Patch {
	id := strconv.Itoa(speciesID)
	return []Patch{
		patchItem(ScopeDex, id),
		patchAggregate(ScopeDex, genKey(speciesID)),
		patchAggregate(ScopeDex, ""),
	}
}

// --- collections ---

// CreateCollection inserts a new empty collection and returns its id.
// The name is trimmed and must be non-empty; nothing is persisted on
// validation failure.
func (e *Engine) CreateCollection(name string) (string, []Patch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, ErrEmptyName
	}
	id := newCollectionID()
	e.State.Collections[id] = &state.Collection{
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Cards:     map[string]*state.CardStatus{},
	}
	if err := e.saveCollections(); err != nil {
		return "", nil, err
	}
	return id, []Patch{fullRerender(ScopeCollections)}, nil
}

// DeleteCollection removes a collection. The wishlist is refused. If the
// deleted collection was the active detail view, navigation falls back to
// the list view.
func (e *Engine) DeleteCollection(collID string) ([]Patch, error) {
	if collID == state.WishlistID {
		return nil, ErrProtectedCollection
	}
	if _, ok := e.State.Collections[collID]; !ok {
		return nil, ErrNoCollection
	}
	delete(e.State.Collections, collID)
	if err := e.saveCollections(); err != nil {
		return nil, err
	}
	if e.State.Filters.ActiveCollection == collID {
		e.State.Filters.ActiveCollection = ""
	}
	return []Patch{fullRerender(ScopeCollections)}, nil
}

// AddCardToCollection inserts a default status for the card unless it is
// already a member. No-op (no write, no patches) when already present.
func (e *Engine) AddCardToCollection(collID, cardID string) ([]Patch, error) {
	coll := e.State.Collections[collID]
	if coll == nil {
		return nil, ErrNoCollection
	}
	if _, ok := coll.Cards[cardID]; ok {
		return nil, nil
	}
	coll.Cards[cardID] = &state.CardStatus{}
	coll.Order = append(coll.Order, cardID)
	if err := e.saveCollections(); err != nil {
		return nil, err
	}
	return []Patch{patchAggregate(ScopeCollections, collID)}, nil
}

// AddCardsToCollection inserts a default status for each card not already
// a member and returns how many were actually added.
func (e *Engine) AddCardsToCollection(collID string, cardIDs []string) (int, []Patch, error) {
	coll := e.State.Collections[collID]
	if coll == nil {
		return 0, nil, ErrNoCollection
	}
	added := 0
	for _, cardID := range cardIDs {
		if _, ok := coll.Cards[cardID]; ok {
			continue
		}
		coll.Cards[cardID] = &state.CardStatus{}
		coll.Order = append(coll.Order, cardID)
		added++
	}
	if added == 0 {
		return 0, nil, nil
	}
	if err := e.saveCollections(); err != nil {
		return 0, nil, err
	}
	return added, []Patch{fullRerender(ScopeCollections)}, nil
}

// RemoveCardFromCollection deletes the card's membership and its status
// record atomically. No-op if the card is not a member.
func (e *Engine) RemoveCardFromCollection(collID, cardID string) ([]Patch, error) {
	coll := e.State.Collections[collID]
	if coll == nil {
		return nil, ErrNoCollection
	}
	if _, ok := coll.Cards[cardID]; !ok {
		return nil, nil
	}
	delete(coll.Cards, cardID)
	for i, id := range coll.Order {
		if id == cardID {
			coll.Order = append(coll.Order[:i], coll.Order[i+1:]...)
			break
		}
	}
	if err := e.saveCollections(); err != nil {
		return nil, err
	}
	return []Patch{fullRerender(ScopeCollections)}, nil
}

// ToggleObtained flips a member's obtained flag. No-op without membership.
func (e *Engine) ToggleObtained(collID, cardID string) ([]Patch, error) {
	coll := e.State.Collections[collID]
	if coll == nil {
		return nil, ErrNoCollection
	}
	status, ok := coll.Cards[cardID]
	if !ok {
		return nil, nil
	}
	status.Obtained = !status.Obtained
	if err := e.saveCollections(); err != nil {
		return nil, err
	}
	return []Patch{
		patchItem(ScopeCollections, cardID),
		patchAggregate(ScopeCollections, collID),
	}, nil
}

// SetComment trims and stores a member's comment; an empty string clears
// it. No-op without membership.
func (e *Engine) SetComment(collID, cardID, comment string) ([]Patch, error) {
	coll := e.State.Collections[collID]
	if coll == nil {
		return nil, ErrNoCollection
	}
	status, ok := coll.Cards[cardID]
	if !ok {
		return nil, nil
	}
	status.Comment = strings.TrimSpace(comment)
	if err := e.saveCollections(); err != nil {
		return nil, err
	}
	return []Patch{patchItem(ScopeCollections, cardID)}, nil
}

// ToggleWishlist adds the card to the wishlist, or removes it if present.
// Reports whether the card is in the wishlist afterwards.
func (e *Engine) ToggleWishlist(cardID string) (bool, []Patch, error) {
	e.State.InitWishlist()
	if e.State.IsInWishlist(cardID) {
		patches, err := e.RemoveCardFromCollection(state.WishlistID, cardID)
		return false, patches, err
	}
	patches, err := e.AddCardToCollection(state.WishlistID, cardID)
	return true, patches, err
}

// --- persistence write-through ---

func (e *Engine) saveCollection() error {
	return e.Store.WriteJSON(storage.KeyCollection, e.State.Collection)
}

func (e *Engine) saveDex() error {
	return e.Store.WriteJSON(storage.KeyDexStatus, e.State.DexStatus)
}

func (e *Engine) saveCollections() error {
	return e.Store.WriteJSON(storage.KeyCollections, e.State.Collections)
}

// SaveAll persists all three blobs; used after import and wishlist init.
func (e *Engine) SaveAll() error {
	if err := e.saveCollection(); err != nil {
		return err
	}
	if err := e.saveDex(); err != nil {
		return err
	}
	return e.saveCollections()
}

// newCollectionID generates a collision-resistant collection id. The
// col_ prefix keeps generated ids disjoint from the reserved wishlist id.
func newCollectionID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("col_%d_%s", time.Now().UnixMilli(), suffix)
}

func genKey(speciesID int) string {
	return strconv.Itoa(species.GenOf(speciesID).Gen)
}
