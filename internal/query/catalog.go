package query

import (
	"sort"
	"strings"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// CatalogFilter is the input to the catalog listing queries.
type CatalogFilter struct {
	Search       string                // substring match on card or set name
	Series       string                // exact match on Set.Series
	Ownership    state.OwnershipFilter // all / have / missing
	HidePocket   bool
	PocketSeries string // series name excluded when HidePocket is set
}

// SetGroup is one set and its matching cards, with the set's owned count
// under the current filters.
type SetGroup struct {
	Set   *catalog.Set
	Cards []*catalog.Card
	Owned int
}

// Stats are aggregate owned/total counts for a scope.
type Stats struct {
	Owned int
	Total int
}

// Missing returns the count of unowned items, never negative.
func (s Stats) Missing() int {
	if s.Total < s.Owned {
		return 0
	}
	return s.Total - s.Owned
}

// Percent returns completion in [0,100], exactly 0 for an empty scope.
func (s Stats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Owned) / float64(s.Total) * 100
}

// ListCatalog computes the ordered (set, matching cards) groups for the
// catalog view. Groups are ordered by set release date descending with
// missing dates last; card order within a group follows catalog order.
// Cards whose set id dangles are skipped.
func ListCatalog(st *state.Store, f CatalogFilter) []SetGroup {
	if st.Catalog == nil {
		return nil
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	groups := map[string]*SetGroup{}
	var order []string
	for _, card := range st.Catalog.Cards {
		set := st.Catalog.SetOf(card)
		if set == nil {
			continue
		}
		if !matchCatalog(st, card, set, search, f) {
			continue
		}
		g, ok := groups[set.ID]
		if !ok {
			g = &SetGroup{Set: set}
			groups[set.ID] = g
			order = append(order, set.ID)
		}
		g.Cards = append(g.Cards, card)
		if st.IsOwned(card.ID) {
			g.Owned++
		}
	}

	out := make([]SetGroup, 0, len(groups))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Set.ReleaseDate > out[j].Set.ReleaseDate
	})
	return out
}

// VisibleCardIDs returns the card ids the catalog listing would show,
// in listing order. Used by bulk add-to-collection.
func VisibleCardIDs(st *state.Store, f CatalogFilter) []string {
	var ids []string
	for _, g := range ListCatalog(st, f) {
		for _, c := range g.Cards {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// CatalogStats computes global owned/total counts. The hide-Pocket toggle
// removes Pocket-series cards from both numerator and denominator; the
// search, series, and ownership filters do not apply here, matching the
// header stat line of the catalog view.
func CatalogStats(st *state.Store, hidePocket bool, pocketSeries string) Stats {
	if st.Catalog == nil {
		return Stats{}
	}
	if !hidePocket {
		return Stats{Owned: st.OwnedCount(), Total: st.Catalog.TotalCards}
	}
	pocket := map[string]bool{}
	for id, s := range st.Catalog.Sets {
		if s.Series == pocketSeries {
			pocket[id] = true
		}
	}
	var stats Stats
	for _, card := range st.Catalog.Cards {
		if pocket[card.SetID] {
			continue
		}
		stats.Total++
		if st.IsOwned(card.ID) {
			stats.Owned++
		}
	}
	return stats
}

// SetStats computes owned/total for every card of one set, unfiltered.
func SetStats(st *state.Store, setID string) Stats {
	var stats Stats
	if st.Catalog == nil {
		return stats
	}
	for _, card := range st.Catalog.Cards {
		if card.SetID != setID {
			continue
		}
		stats.Total++
		if st.IsOwned(card.ID) {
			stats.Owned++
		}
	}
	return stats
}

func matchCatalog(st *state.Store, card *catalog.Card, set *catalog.Set, search string, f CatalogFilter) bool {
	if f.HidePocket && set.Series == f.PocketSeries {
		return false
	}
	if f.Series != "" && set.Series != f.Series {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(card.Name), search) &&
		!strings.Contains(strings.ToLower(set.Name), search) {
		return false
	}
	have := st.IsOwned(card.ID)
	if f.Ownership.Have() && !have {
		return false
	}
	if f.Ownership.Missing() && have {
		return false
	}
	return true
}
