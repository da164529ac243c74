package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/mutate"
	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/render"
	"github.com/pkmn-tools/dexctl/internal/state"
	"github.com/pkmn-tools/dexctl/internal/storage"
)

func init() {
	color.NoColor = true
}

func renderState(t *testing.T) (*mutate.Engine, *state.Store) {
	t.Helper()
	st := state.New()
	st.SetCatalog(&catalog.Catalog{
		Sets: map[string]*catalog.Set{
			"sv1": {ID: "sv1", Name: "Scarlet & Violet", ReleaseDate: "2023/03/31"},
		},
		Cards: []*catalog.Card{
			{ID: "sv1-25", Name: "Pikachu", LocalID: "25", SetID: "sv1"},
			{ID: "sv1-26", Name: "Raichu", LocalID: "26", SetID: "sv1"},
		},
		TotalCards: 2,
		TotalSets:  1,
	})
	return mutate.New(st, storage.Open(t.TempDir())), st
}

func TestStatLine(t *testing.T) {
	got := render.StatLine(query.Stats{Owned: 1500, Total: 3000})
	if !strings.Contains(got, "1,500/3,000") {
		t.Errorf("StatLine = %q, want grouped counts", got)
	}
	if !strings.Contains(got, "50.0%") {
		t.Errorf("StatLine = %q, want one-decimal percentage", got)
	}
}

func TestStatLine_EmptyScope(t *testing.T) {
	got := render.StatLine(query.Stats{})
	if !strings.Contains(got, "0.0%") {
		t.Errorf("StatLine(empty) = %q, want 0.0%%", got)
	}
}

func TestCatalogListing_ShowsOwnershipMarks(t *testing.T) {
	_, st := renderState(t)
	st.Collection["sv1-25"] = true

	var buf bytes.Buffer
	r := render.New(&buf)
	r.CatalogListing(st, query.ListCatalog(st, query.CatalogFilter{}), true)

	out := buf.String()
	if !strings.Contains(out, "Scarlet & Violet") {
		t.Errorf("listing missing set name:\n%s", out)
	}
	if !strings.Contains(out, "Pikachu") || !strings.Contains(out, "Raichu") {
		t.Errorf("listing missing card lines:\n%s", out)
	}
	if !strings.Contains(out, "1/2") {
		t.Errorf("listing missing set progress:\n%s", out)
	}
}

func TestApply_PatchItemPrintsOneLine(t *testing.T) {
	e, st := renderState(t)

	patches, err := e.SetOwned("sv1-25")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	render.New(&buf).Apply(st, render.ApplyOptions{}, patches[:1])

	out := buf.String()
	if !strings.Contains(out, "Pikachu") {
		t.Errorf("item patch output = %q, want the card line", out)
	}
	if strings.Contains(out, "Raichu") {
		t.Errorf("item patch redrew unrelated cards:\n%s", out)
	}
}

func TestApply_AggregatePrintsStatLine(t *testing.T) {
	e, st := renderState(t)

	patches, err := e.SetOwned("sv1-25")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	render.New(&buf).Apply(st, render.ApplyOptions{}, patches[1:])

	out := buf.String()
	if !strings.Contains(out, "1/2") {
		t.Errorf("aggregate output = %q, want set progress 1/2", out)
	}
	if !strings.Contains(out, "collection:") {
		t.Errorf("aggregate output = %q, want the global stat line", out)
	}
}
