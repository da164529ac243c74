package query_test

import (
	"testing"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// testState builds a store over a two-set catalog: set B released 2023,
// set A released 2024, plus a Pocket set and a dangling card.
func testState() *state.Store {
	st := state.New()
	st.SetCatalog(&catalog.Catalog{
		Sets: map[string]*catalog.Set{
			"a": {ID: "a", Name: "Temporal Forces", Series: "Scarlet & Violet", ReleaseDate: "2024/03/22"},
			"b": {ID: "b", Name: "Obsidian Flames", Series: "Scarlet & Violet", ReleaseDate: "2023/08/11"},
			"p": {ID: "p", Name: "Genetic Apex", Series: "Pokémon TCG Pocket", ReleaseDate: "2024/10/30"},
		},
		Cards: []*catalog.Card{
			{ID: "b-1", Name: "Charmander", LocalID: "1", SetID: "b"},
			{ID: "b-2", Name: "Charizard ex", LocalID: "2", SetID: "b"},
			{ID: "a-1", Name: "Pikachu", LocalID: "1", SetID: "a"},
			{ID: "a-2", Name: "Raichu", LocalID: "2", SetID: "a"},
			{ID: "p-1", Name: "Mewtwo ex", LocalID: "1", SetID: "p"},
			{ID: "x-1", Name: "Lost Card", LocalID: "1", SetID: "gone"},
		},
		TotalCards: 6,
		TotalSets:  3,
	})
	return st
}

func TestListCatalog_NewestSetFirst(t *testing.T) {
	st := testState()
	groups := query.ListCatalog(st, query.CatalogFilter{})

	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	if groups[0].Set.ID != "p" || groups[1].Set.ID != "a" || groups[2].Set.ID != "b" {
		t.Errorf("group order = [%s %s %s], want release date descending [p a b]",
			groups[0].Set.ID, groups[1].Set.ID, groups[2].Set.ID)
	}
}

func TestListCatalog_MissingReleaseDateSortsLast(t *testing.T) {
	st := testState()
	st.Catalog.Sets["u"] = &catalog.Set{ID: "u", Name: "Undated Promos"}
	st.Catalog.Cards = append(st.Catalog.Cards, &catalog.Card{ID: "u-1", Name: "Promo Mew", SetID: "u"})

	groups := query.ListCatalog(st, query.CatalogFilter{})
	last := groups[len(groups)-1]
	if last.Set.ID != "u" {
		t.Errorf("last group = %s, want the undated set", last.Set.ID)
	}
}

func TestListCatalog_SkipsDanglingSet(t *testing.T) {
	st := testState()
	for _, g := range query.ListCatalog(st, query.CatalogFilter{}) {
		for _, c := range g.Cards {
			if c.ID == "x-1" {
				t.Error("card with dangling set id appeared in the listing")
			}
		}
	}
}

func TestListCatalog_OwnershipFilter(t *testing.T) {
	st := testState()
	st.Collection["a-1"] = true

	groups := query.ListCatalog(st, query.CatalogFilter{Ownership: state.FilterMissing})
	for _, g := range groups {
		for _, c := range g.Cards {
			if c.ID == "a-1" {
				t.Error("owned card shown under the missing filter")
			}
		}
	}

	groups = query.ListCatalog(st, query.CatalogFilter{Ownership: state.FilterHave})
	if len(groups) != 1 || len(groups[0].Cards) != 1 || groups[0].Cards[0].ID != "a-1" {
		t.Errorf("have filter = %+v, want just a-1", groups)
	}
}

func TestListCatalog_SearchMatchesCardAndSetNames(t *testing.T) {
	st := testState()

	groups := query.ListCatalog(st, query.CatalogFilter{Search: "chari"})
	if len(groups) != 1 || groups[0].Cards[0].ID != "b-2" {
		t.Errorf("card-name search = %+v, want Charizard ex", groups)
	}

	// A set-name hit keeps every card of the set.
	groups = query.ListCatalog(st, query.CatalogFilter{Search: "obsidian"})
	if len(groups) != 1 || len(groups[0].Cards) != 2 {
		t.Errorf("set-name search matched %d cards, want 2", len(groups[0].Cards))
	}
}

func TestListCatalog_HidePocket(t *testing.T) {
	st := testState()
	groups := query.ListCatalog(st, query.CatalogFilter{
		HidePocket:   true,
		PocketSeries: "Pokémon TCG Pocket",
	})
	for _, g := range groups {
		if g.Set.ID == "p" {
			t.Error("Pocket set shown with HidePocket")
		}
	}
}

func TestCatalogStats(t *testing.T) {
	st := testState()
	st.Collection["a-1"] = true
	st.Collection["p-1"] = true

	s := query.CatalogStats(st, false, "Pokémon TCG Pocket")
	if s.Owned != 2 || s.Total != 6 {
		t.Errorf("stats = %d/%d, want 2/6", s.Owned, s.Total)
	}

	// Hiding Pocket removes its cards from both sides of the ratio.
	s = query.CatalogStats(st, true, "Pokémon TCG Pocket")
	if s.Owned != 1 || s.Total != 5 {
		t.Errorf("hide-pocket stats = %d/%d, want 1/5", s.Owned, s.Total)
	}
}

func TestStats_Percent(t *testing.T) {
	if got := (query.Stats{}).Percent(); got != 0 {
		t.Errorf("empty Percent = %v, want 0", got)
	}
	if got := (query.Stats{Owned: 1, Total: 2}).Percent(); got != 50 {
		t.Errorf("Percent = %v, want 50", got)
	}
	if got := (query.Stats{Owned: 1, Total: 3}).Missing(); got != 2 {
		t.Errorf("Missing = %v, want 2", got)
	}
}

func TestSetStats(t *testing.T) {
	st := testState()
	st.Collection["b-1"] = true

	s := query.SetStats(st, "b")
	if s.Owned != 1 || s.Total != 2 {
		t.Errorf("SetStats(b) = %d/%d, want 1/2", s.Owned, s.Total)
	}
}

func TestVisibleCardIDs(t *testing.T) {
	st := testState()
	ids := query.VisibleCardIDs(st, query.CatalogFilter{Series: "Scarlet & Violet"})
	if len(ids) != 4 {
		t.Fatalf("len(ids) = %d, want 4", len(ids))
	}
	// Listing order: newest set first, catalog order within the set.
	if ids[0] != "a-1" || ids[1] != "a-2" || ids[2] != "b-1" || ids[3] != "b-2" {
		t.Errorf("ids = %v", ids)
	}
}
