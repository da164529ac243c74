package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkmn-tools/dexctl/internal/catalog"
)

var sampleJSON = []byte(`{
  "updatedAt": "2026-08-01T00:00:00Z",
  "totalCards": 99,
  "totalSets": 99,
  "sets": {
    "sv1": {"id": "sv1", "name": "Scarlet & Violet", "series": "Scarlet & Violet", "releaseDate": "2023/03/31", "total": 2},
    "bad": null
  },
  "cards": [
    {"id": "sv1-25", "name": "Pikachu", "localId": "25", "setId": "sv1", "rarity": "Common"},
    {"id": "sv1-254", "name": "Pikachu ex", "number": "254", "setId": "sv1"},
    null,
    {"name": "no id", "setId": "sv1"}
  ]
}`)

func TestParse_NormalizesCounts(t *testing.T) {
	c, err := catalog.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.TotalCards != 2 {
		t.Errorf("TotalCards = %d, want 2", c.TotalCards)
	}
	if c.TotalSets != 1 {
		t.Errorf("TotalSets = %d, want 1", c.TotalSets)
	}
	if _, ok := c.Sets["bad"]; ok {
		t.Error("nil set survived normalize")
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := catalog.Parse([]byte("{truncated"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "cards.json"))
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, sampleJSON, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Cards) != 2 {
		t.Errorf("len(Cards) = %d, want 2", len(c.Cards))
	}
}

func TestDisplayNumber(t *testing.T) {
	c := &catalog.Card{LocalID: "25", Number: "025"}
	if got := c.DisplayNumber(); got != "25" {
		t.Errorf("DisplayNumber = %q, want %q (localId wins)", got, "25")
	}
	c = &catalog.Card{Number: "254"}
	if got := c.DisplayNumber(); got != "254" {
		t.Errorf("DisplayNumber = %q, want %q", got, "254")
	}
}

func TestBuildIndex(t *testing.T) {
	c, err := catalog.Parse(sampleJSON)
	if err != nil {
		t.Fatal(err)
	}
	idx := catalog.BuildIndex(c)
	if idx["sv1-25"] == nil || idx["sv1-25"].Name != "Pikachu" {
		t.Errorf("index missing sv1-25: %v", idx["sv1-25"])
	}
	if idx["nope"] != nil {
		t.Error("index returned a card for an unknown id")
	}
}

func TestSetOf_Dangling(t *testing.T) {
	c, err := catalog.Parse(sampleJSON)
	if err != nil {
		t.Fatal(err)
	}
	if s := c.SetOf(&catalog.Card{ID: "x-1", SetID: "gone"}); s != nil {
		t.Errorf("SetOf(dangling) = %v, want nil", s)
	}
}

func TestSeriesList(t *testing.T) {
	c := &catalog.Catalog{Sets: map[string]*catalog.Set{
		"a": {ID: "a", Series: "Sword & Shield"},
		"b": {ID: "b", Series: "Scarlet & Violet"},
		"c": {ID: "c", Series: "Scarlet & Violet"},
		"d": {ID: "d"},
	}}
	got := catalog.SeriesList(c)
	want := []string{"Scarlet & Violet", "Sword & Shield"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SeriesList = %v, want %v", got, want)
	}
}
