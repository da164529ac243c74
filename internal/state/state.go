package state

import (
	"sort"
	"time"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/species"
	"github.com/pkmn-tools/dexctl/internal/storage"
)

// WishlistID is the reserved identifier of the pinned wishlist collection.
// Generated collection ids carry a col_ prefix so they can never collide.
const WishlistID = "wishlist"

// WishlistName is the display name the wishlist is created with.
const WishlistName = "⭐ Wishlist"

// CardStatus is the per-card record inside a collection. A status exists
// for a card iff the card is a member of the collection.
type CardStatus struct {
	Obtained bool   `json:"obtained"`
	Comment  string `json:"comment"`
}

// Collection is a user-defined named group of cards.
//
// Cards holds the membership and per-card status; Order preserves the
// insertion order of members, which Go maps cannot. The two are kept in
// lockstep by the mutation engine.
type Collection struct {
	Name      string                 `json:"name"`
	CreatedAt string                 `json:"createdAt"`
	Cards     map[string]*CardStatus `json:"cards"`
	Order     []string               `json:"order,omitempty"`
}

// MemberIDs returns the member card ids in insertion order.
func (c *Collection) MemberIDs() []string {
	return c.Order
}

// normalize repairs a collection loaded from storage or import: nil maps
// become empty, nil statuses are dropped, and an absent or inconsistent
// order slice is rebuilt sorted by card id for determinism.
func (c *Collection) normalize() {
	if c.Cards == nil {
		c.Cards = map[string]*CardStatus{}
	}
	for id, st := range c.Cards {
		if st == nil {
			c.Cards[id] = &CardStatus{}
		}
	}
	if len(c.Order) == len(c.Cards) {
		consistent := true
		for _, id := range c.Order {
			if _, ok := c.Cards[id]; !ok {
				consistent = false
				break
			}
		}
		if consistent {
			return
		}
	}
	c.Order = make([]string, 0, len(c.Cards))
	for id := range c.Cards {
		c.Order = append(c.Order, id)
	}
	sort.Strings(c.Order)
}

// Store is the single source of truth: the three mutable state blobs,
// derived indices over the immutable reference data, and transient filter
// state. It is created explicitly and passed to the query and mutation
// engines; there are no ambient globals.
type Store struct {
	// Persistent state, hydrated from storage.
	Collection  map[string]bool        // card id → owned
	DexStatus   map[int]bool           // species number → registered
	Collections map[string]*Collection // collection id → collection

	// Immutable reference data, set once after load.
	Catalog   *catalog.Catalog
	CardIndex catalog.Index
	Species   []*species.Species

	// Transient view state.
	Filters Filters
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		Collection:  map[string]bool{},
		DexStatus:   map[int]bool{},
		Collections: map[string]*Collection{},
	}
}

// Hydrate loads the three state blobs from storage. Reads never fail;
// missing or corrupt blobs leave the empty defaults in place.
func Hydrate(s *storage.Store) *Store {
	st := New()
	s.ReadJSON(storage.KeyCollection, &st.Collection)
	s.ReadJSON(storage.KeyDexStatus, &st.DexStatus)
	s.ReadJSON(storage.KeyCollections, &st.Collections)
	st.Normalize()
	return st
}

// Normalize repairs state loaded from storage or import.
func (st *Store) Normalize() {
	if st.Collection == nil {
		st.Collection = map[string]bool{}
	}
	if st.DexStatus == nil {
		st.DexStatus = map[int]bool{}
	}
	if st.Collections == nil {
		st.Collections = map[string]*Collection{}
	}
	for id, c := range st.Collections {
		if c == nil {
			delete(st.Collections, id)
			continue
		}
		c.normalize()
	}
}

// SetCatalog attaches the loaded catalog and builds the card index.
func (st *Store) SetCatalog(c *catalog.Catalog) {
	st.Catalog = c
	st.CardIndex = catalog.BuildIndex(c)
}

// InitWishlist creates the wishlist collection if absent. Idempotent: an
// existing wishlist is left untouched. Reports whether it was created.
func (st *Store) InitWishlist() bool {
	if _, ok := st.Collections[WishlistID]; ok {
		return false
	}
	st.Collections[WishlistID] = &Collection{
		Name:      WishlistName,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Cards:     map[string]*CardStatus{},
	}
	return true
}

// IsOwned reports whether the card is in the flat ownership mapping.
func (st *Store) IsOwned(cardID string) bool {
	return st.Collection[cardID]
}

// IsRegistered reports whether the species is registered in the dex.
func (st *Store) IsRegistered(speciesID int) bool {
	return st.DexStatus[speciesID]
}

// IsInWishlist reports whether the card is a member of the wishlist.
func (st *Store) IsInWishlist(cardID string) bool {
	wl := st.Collections[WishlistID]
	if wl == nil {
		return false
	}
	_, ok := wl.Cards[cardID]
	return ok
}

// OwnedCount returns the number of owned cards.
func (st *Store) OwnedCount() int {
	n := 0
	for _, owned := range st.Collection {
		if owned {
			n++
		}
	}
	return n
}
