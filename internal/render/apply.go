package render

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/pkmn-tools/dexctl/internal/mutate"
	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// ApplyOptions carries the filter context a full re-render needs.
type ApplyOptions struct {
	Catalog CatalogOptions
}

// CatalogOptions mirrors the catalog header-stat toggles.
type CatalogOptions struct {
	HidePocket   bool
	PocketSeries string
}

// Apply consumes patch instructions from a mutation and reprints exactly
// what each one names. Storage was already written when the patches were
// produced, so what this prints can never be ahead of disk.
func (r *Renderer) Apply(st *state.Store, opts ApplyOptions, patches []mutate.Patch) {
	for _, p := range patches {
		switch p.Scope {
		case mutate.ScopeCatalog:
			r.applyCatalog(st, opts, p)
		case mutate.ScopeDex:
			r.applyDex(st, p)
		case mutate.ScopeCollections:
			r.applyCollections(st, p)
		}
	}
}

func (r *Renderer) applyCatalog(st *state.Store, opts ApplyOptions, p mutate.Patch) {
	switch p.Kind {
	case mutate.PatchItem:
		r.CardLine(st, p.ID)
	case mutate.PatchAggregate:
		if p.ID == "" {
			stats := query.CatalogStats(st, opts.Catalog.HidePocket, opts.Catalog.PocketSeries)
			fmt.Fprintf(r.Out, "%s %s\n", color.CyanString("collection:"), StatLine(stats))
			return
		}
		stats := query.SetStats(st, p.ID)
		name := p.ID
		if st.Catalog != nil {
			if set := st.Catalog.Sets[p.ID]; set != nil {
				name = set.Name
			}
		}
		fmt.Fprintf(r.Out, "%s %d/%d  %s\n", color.CyanString("%s:", name), stats.Owned, stats.Total, Bar(stats.Percent(), 16))
	case mutate.FullRerender:
		groups := query.ListCatalog(st, query.CatalogFilter{
			HidePocket:   opts.Catalog.HidePocket,
			PocketSeries: opts.Catalog.PocketSeries,
		})
		r.CatalogListing(st, groups, false)
	}
}

func (r *Renderer) applyDex(st *state.Store, p mutate.Patch) {
	switch p.Kind {
	case mutate.PatchItem:
		if id, err := strconv.Atoi(p.ID); err == nil {
			if sp := query.SpeciesByID(st, id); sp != nil {
				r.SpeciesLine(st, sp)
			}
		}
	case mutate.PatchAggregate:
		if p.ID == "" {
			fmt.Fprintf(r.Out, "%s %s\n", color.CyanString("living dex:"), StatLine(query.DexStats(st)))
			return
		}
		if gen, err := strconv.Atoi(p.ID); err == nil {
			stats := query.GenStats(st, gen)
			fmt.Fprintf(r.Out, "%s %d/%d  %s\n", color.CyanString("gen %s:", p.ID), stats.Owned, stats.Total, Bar(stats.Percent(), 16))
		}
	case mutate.FullRerender:
		r.DexListing(st, query.ListDex(st, query.DexFilter{}), false)
	}
}

func (r *Renderer) applyCollections(st *state.Store, p mutate.Patch) {
	switch p.Kind {
	case mutate.PatchItem:
		// A member line only makes sense inside a detail listing; patching
		// a single collection item in CLI mode falls back to its stat line
		// parent via the accompanying aggregate patch.
	case mutate.PatchAggregate:
		coll := st.Collections[p.ID]
		if coll == nil {
			return
		}
		stats := query.CollectionStats(st, p.ID)
		fmt.Fprintf(r.Out, "%s %d/%d obtained  %s\n", color.CyanString("%s:", coll.Name), stats.Owned, stats.Total, Bar(stats.Percent(), 16))
	case mutate.FullRerender:
		r.CollectionsList(st, query.ListCollections(st), false)
	}
}
