package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkmn-tools/dexctl/internal/species"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// DexFilter is the input to the dex listing queries.
type DexFilter struct {
	Search    string                // substring match on name or number
	Gen       int                   // 0 = all generations
	Ownership state.OwnershipFilter // all / registered / missing
}

// GenGroup is one generation and its matching species, with the group's
// registered count under the current filters.
type GenGroup struct {
	Gen        species.Generation
	Species    []*species.Species
	Registered int
}

// ListDex computes the dex listing grouped by generation. Groups are
// ordered ascending by generation number, members ascending by species
// number (the species list is already number-ordered).
func ListDex(st *state.Store, f DexFilter) []GenGroup {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	groups := map[int]*GenGroup{}
	var order []int
	for _, sp := range st.Species {
		if !matchDex(st, sp, search, f) {
			continue
		}
		g := species.GenOf(sp.ID)
		grp, ok := groups[g.Gen]
		if !ok {
			grp = &GenGroup{Gen: g}
			groups[g.Gen] = grp
			order = append(order, g.Gen)
		}
		grp.Species = append(grp.Species, sp)
		if st.IsRegistered(sp.ID) {
			grp.Registered++
		}
	}

	sort.Ints(order)
	out := make([]GenGroup, 0, len(groups))
	for _, gen := range order {
		out = append(out, *groups[gen])
	}
	return out
}

// DexStats computes the global registered/total counts over the full
// species list, ignoring filters.
func DexStats(st *state.Store) Stats {
	var stats Stats
	for _, sp := range st.Species {
		stats.Total++
		if st.IsRegistered(sp.ID) {
			stats.Owned++
		}
	}
	return stats
}

// GenStats computes registered/total for one generation, unfiltered.
func GenStats(st *state.Store, gen int) Stats {
	var stats Stats
	for _, sp := range st.Species {
		if species.GenOf(sp.ID).Gen != gen {
			continue
		}
		stats.Total++
		if st.IsRegistered(sp.ID) {
			stats.Owned++
		}
	}
	return stats
}

// SpeciesByID returns the species with the given number, or nil.
func SpeciesByID(st *state.Store, id int) *species.Species {
	for _, sp := range st.Species {
		if sp.ID == id {
			return sp
		}
	}
	return nil
}

func matchDex(st *state.Store, sp *species.Species, search string, f DexFilter) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(sp.Name), search) &&
		!strings.Contains(strconv.Itoa(sp.ID), search) {
		return false
	}
	if f.Gen != 0 && species.GenOf(sp.ID).Gen != f.Gen {
		return false
	}
	reg := st.IsRegistered(sp.ID)
	if f.Ownership.Have() && !reg {
		return false
	}
	if f.Ownership.Missing() && reg {
		return false
	}
	return true
}
