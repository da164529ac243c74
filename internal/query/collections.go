package query

import (
	"sort"
	"strings"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// CollectionFilter is the input to the collection detail listing.
type CollectionFilter struct {
	Search    string
	Ownership state.OwnershipFilter // all / obtained / missing
}

// CollectionEntry is one resolved member of a collection.
type CollectionEntry struct {
	Card   *catalog.Card
	Status *state.CardStatus
}

// ListCollection resolves a collection's members through the card index in
// insertion order, silently dropping dangling references, and applies the
// search and status filters. Returns nil for an unknown collection id.
func ListCollection(st *state.Store, collID string, f CollectionFilter) []CollectionEntry {
	coll := st.Collections[collID]
	if coll == nil {
		return nil
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []CollectionEntry
	for _, cardID := range coll.MemberIDs() {
		card := st.CardIndex[cardID]
		if card == nil {
			continue // dangling reference: the catalog moved on without us
		}
		status := coll.Cards[cardID]
		if search != "" && !strings.Contains(strings.ToLower(card.Name), search) {
			continue
		}
		if f.Ownership.Have() && !status.Obtained {
			continue
		}
		if f.Ownership.Missing() && status.Obtained {
			continue
		}
		out = append(out, CollectionEntry{Card: card, Status: status})
	}
	return out
}

// CollectionStats computes obtained/total over every member, including
// dangling references, so the counts agree with the persisted state.
func CollectionStats(st *state.Store, collID string) Stats {
	coll := st.Collections[collID]
	if coll == nil {
		return Stats{}
	}
	var stats Stats
	for _, status := range coll.Cards {
		stats.Total++
		if status.Obtained {
			stats.Owned++
		}
	}
	return stats
}

// DanglingCount returns the number of member ids that no longer resolve in
// the card index.
func DanglingCount(st *state.Store, collID string) int {
	coll := st.Collections[collID]
	if coll == nil {
		return 0
	}
	n := 0
	for id := range coll.Cards {
		if st.CardIndex[id] == nil {
			n++
		}
	}
	return n
}

// CollectionSummary is one row of the collections list view.
type CollectionSummary struct {
	ID         string
	Collection *state.Collection
	Stats      Stats
}

// ListCollections returns every collection, wishlist pinned first, the
// rest ordered newest-first by creation timestamp.
func ListCollections(st *state.Store) []CollectionSummary {
	var wishlist []CollectionSummary
	var rest []CollectionSummary
	for id, coll := range st.Collections {
		s := CollectionSummary{ID: id, Collection: coll, Stats: CollectionStats(st, id)}
		if id == state.WishlistID {
			wishlist = append(wishlist, s)
		} else {
			rest = append(rest, s)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].Collection.CreatedAt != rest[j].Collection.CreatedAt {
			return rest[i].Collection.CreatedAt > rest[j].Collection.CreatedAt
		}
		return rest[i].ID < rest[j].ID
	})
	return append(wishlist, rest...)
}
