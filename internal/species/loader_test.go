package species_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkmn-tools/dexctl/internal/pokeapi"
	"github.com/pkmn-tools/dexctl/internal/species"
	"github.com/pkmn-tools/dexctl/internal/storage"
)

// fakeAPI serves a three-species index plus details, counting index hits.
func fakeAPI(t *testing.T, indexHits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(indexHits, 1)
		fmt.Fprint(w, `{"results":[
			{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
			{"name":"pikachu","url":"https://pokeapi.co/api/v2/pokemon/25/"},
			{"name":"mega-beast","url":"https://pokeapi.co/api/v2/pokemon/10033/"}
		]}`)
	})
	mux.HandleFunc("/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/pokemon/")
		switch id {
		case "1":
			fmt.Fprint(w, `{"id":1,"name":"bulbasaur","types":[{"type":{"name":"grass"}},{"type":{"name":"poison"}}],
				"sprites":{"front_default":"fd1","other":{"official-artwork":{"front_default":"art1"}}}}`)
		case "25":
			http.NotFound(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRefresh_FiltersAndDegrades(t *testing.T) {
	var hits int32
	srv := fakeAPI(t, &hits)
	store := storage.Open(t.TempDir())
	loader := species.NewLoader(pokeapi.New(srv.URL), store, 30*24*time.Hour, 50)

	list, err := loader.Refresh(context.Background(), nil)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	// The 10033 form variant is out of dex range and must be dropped.
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 25 {
		t.Errorf("list order = [%d %d], want ascending [1 25]", list[0].ID, list[1].ID)
	}
	if list[0].Sprite != "art1" {
		t.Errorf("Sprite = %q, want official artwork %q", list[0].Sprite, "art1")
	}
	if len(list[0].Types) != 2 || list[0].Types[0] != "grass" {
		t.Errorf("Types = %v, want [grass poison]", list[0].Types)
	}
	// Pikachu's detail 404s; the entry degrades to a name-only placeholder.
	if list[1].Name != "pikachu" || len(list[1].Types) != 0 {
		t.Errorf("placeholder = %+v, want name-only", list[1])
	}
}

func TestLoad_ServesFreshCacheWithoutNetwork(t *testing.T) {
	var hits int32
	srv := fakeAPI(t, &hits)
	store := storage.Open(t.TempDir())
	loader := species.NewLoader(pokeapi.New(srv.URL), store, 30*24*time.Hour, 50)

	if _, err := loader.Refresh(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	before := atomic.LoadInt32(&hits)

	list, err := loader.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("len(list) = %d, want 2", len(list))
	}
	if got := atomic.LoadInt32(&hits); got != before {
		t.Errorf("Load hit the network with a fresh cache (%d -> %d index hits)", before, got)
	}
}

func TestLoad_RefetchesExpiredCache(t *testing.T) {
	var hits int32
	srv := fakeAPI(t, &hits)
	store := storage.Open(t.TempDir())

	// Seed a stale cache document directly.
	stale := struct {
		FetchedAt time.Time          `json:"fetchedAt"`
		List      []*species.Species `json:"list"`
	}{
		FetchedAt: time.Now().Add(-31 * 24 * time.Hour),
		List:      []*species.Species{{ID: 1, Name: "bulbasaur"}},
	}
	if err := store.WriteJSON(storage.KeySpeciesList, stale); err != nil {
		t.Fatal(err)
	}

	loader := species.NewLoader(pokeapi.New(srv.URL), store, 30*24*time.Hour, 50)
	if _, ok := loader.Cached(); ok {
		t.Fatal("Cached() returned a stale document")
	}
	if _, err := loader.Load(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&hits) == 0 {
		t.Error("Load never hit the network for an expired cache")
	}
}

func TestCached_EmptyListIsAMiss(t *testing.T) {
	store := storage.Open(t.TempDir())
	doc := map[string]interface{}{"fetchedAt": time.Now(), "list": []interface{}{}}
	if err := store.WriteJSON(storage.KeySpeciesList, doc); err != nil {
		t.Fatal(err)
	}
	loader := species.NewLoader(pokeapi.New("http://unused.invalid"), store, time.Hour, 50)
	if _, ok := loader.Cached(); ok {
		t.Error("Cached() returned an empty list")
	}
}

func TestRefresh_ReportsProgress(t *testing.T) {
	var hits int32
	srv := fakeAPI(t, &hits)
	loader := species.NewLoader(pokeapi.New(srv.URL), storage.Open(t.TempDir()), time.Hour, 1)

	var pcts []int
	_, err := loader.Refresh(context.Background(), func(pct int, label string) {
		pcts = append(pcts, pct)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pcts) < 3 {
		t.Fatalf("progress reports = %v, want at least start/batches/finish", pcts)
	}
	for i := 1; i < len(pcts); i++ {
		if pcts[i] < pcts[i-1] {
			t.Errorf("progress went backwards: %v", pcts)
		}
	}
	if pcts[len(pcts)-1] != 100 {
		t.Errorf("final progress = %d, want 100", pcts[len(pcts)-1])
	}
}
