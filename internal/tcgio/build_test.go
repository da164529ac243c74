package tcgio_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/tcgio"
)

func fakeTCG(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/sets", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"id":"old","name":"Old Set","series":"Classic","releaseDate":"2020/01/01","total":2},
			{"id":"new","name":"New Set","series":"Modern","releaseDate":"2024/01/01","total":2}
		]}`)
	})
	mux.HandleFunc("/cards", func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("X-Api-Key"); key != "test-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"page":1,"pageSize":250,"totalCount":4,"data":[
			{"id":"old-10","name":"Gamma","number":"10","set":{"id":"old"}},
			{"id":"old-2","name":"Beta","number":"2","set":{"id":"old"}},
			{"id":"new-1","name":"Alpha","number":"1","set":{"id":"new"},"rarity":"Rare"},
			{"id":"new-2","name":"Delta","number":"2","set":{"id":"new"}}
		]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestBuildCatalog_SortsNewestSetThenNumber(t *testing.T) {
	srv := fakeTCG(t)
	c := tcgio.New(srv.URL, "test-key")

	cat, err := tcgio.BuildCatalog(context.Background(), c, nil)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	if cat.TotalCards != 4 || cat.TotalSets != 2 {
		t.Fatalf("totals = %d cards / %d sets, want 4/2", cat.TotalCards, cat.TotalSets)
	}

	// Newest set first; within a set, numeric-aware number order puts
	// "2" before "10".
	want := []string{"new-1", "new-2", "old-2", "old-10"}
	for i, c := range cat.Cards {
		if c.ID != want[i] {
			t.Errorf("Cards[%d] = %s, want %s", i, c.ID, want[i])
		}
	}
	if cat.Cards[0].Rarity != "Rare" {
		t.Errorf("rarity lost: %+v", cat.Cards[0])
	}
}

func TestBuildCatalog_ReportsProgress(t *testing.T) {
	srv := fakeTCG(t)
	c := tcgio.New(srv.URL, "test-key")

	var fetched, total int
	if _, err := tcgio.BuildCatalog(context.Background(), c, func(f, tot int) {
		fetched, total = f, tot
	}); err != nil {
		t.Fatal(err)
	}
	if fetched != 4 || total != 4 {
		t.Errorf("final progress = %d/%d, want 4/4", fetched, total)
	}
}

func TestBuildCatalog_AuthFailure(t *testing.T) {
	srv := fakeTCG(t)
	c := tcgio.New(srv.URL, "wrong-key")

	if _, err := tcgio.BuildCatalog(context.Background(), c, nil); err == nil {
		t.Fatal("expected error on rejected API key")
	}
}

func TestWriteCatalog_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cards.json")
	in := &catalog.Catalog{
		UpdatedAt:  "2026-08-01T00:00:00Z",
		TotalCards: 1,
		TotalSets:  1,
		Sets:       map[string]*catalog.Set{"s": {ID: "s", Name: "Sample"}},
		Cards:      []*catalog.Card{{ID: "s-1", Name: "Only", SetID: "s"}},
	}

	if err := tcgio.WriteCatalog(path, in); err != nil {
		t.Fatalf("WriteCatalog: %v", err)
	}
	out, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Cards) != 1 || out.Cards[0].ID != "s-1" {
		t.Errorf("round trip = %+v", out.Cards)
	}
}
