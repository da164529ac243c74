package species

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkmn-tools/dexctl/internal/pokeapi"
	"github.com/pkmn-tools/dexctl/internal/storage"
)

// maxNumber bounds the national dex range handled by this tool. Form
// variants and numbers above it are excluded on purpose.
const maxNumber = 1025

// Progress reports incremental load progress after each detail batch.
type Progress func(pct int, label string)

// cacheDoc is the persisted species cache blob.
type cacheDoc struct {
	FetchedAt time.Time  `json:"fetchedAt"`
	List      []*Species `json:"list"`
}

// Loader loads the species list, serving from the durable cache when it is
// fresh and falling back to a two-phase PokeAPI fetch otherwise.
type Loader struct {
	Client    *pokeapi.Client
	Store     *storage.Store
	TTL       time.Duration
	BatchSize int
}

// NewLoader creates a Loader with the given cache TTL and detail batch size.
func NewLoader(client *pokeapi.Client, store *storage.Store, ttl time.Duration, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Loader{Client: client, Store: store, TTL: ttl, BatchSize: batchSize}
}

// Load returns the full species list. A fresh non-empty cache is returned
// without network access; otherwise the list is fetched, cached, and
// returned. progress may be nil.
func (l *Loader) Load(ctx context.Context, progress Progress) ([]*Species, error) {
	if list, ok := l.Cached(); ok {
		return list, nil
	}
	return l.Refresh(ctx, progress)
}

// Refresh always fetches from the network and rewrites the cache.
func (l *Loader) Refresh(ctx context.Context, progress Progress) ([]*Species, error) {
	report := func(pct int, label string) {
		if progress != nil {
			progress(pct, label)
		}
	}

	report(5, "Fetching species index…")
	entries, err := l.Client.ListSpecies(ctx)
	if err != nil {
		return nil, err
	}

	// Keep only numbered species in range, sorted ascending.
	type pending struct {
		id   int
		name string
	}
	var main []pending
	for _, e := range entries {
		if id := e.ID(); id >= 1 && id <= maxNumber {
			main = append(main, pending{id: id, name: e.Name})
		}
	}
	sort.Slice(main, func(i, j int) bool { return main[i].id < main[j].id })
	report(20, "Index loaded. Fetching details…")

	// Details in fixed-size batches: concurrent within a batch, sequential
	// across batches, one progress report per batch boundary. A failed
	// item degrades to a placeholder rather than aborting the load.
	list := make([]*Species, 0, len(main))
	total := len(main)
	for start := 0; start < total; start += l.BatchSize {
		end := start + l.BatchSize
		if end > total {
			end = total
		}
		batch := main[start:end]
		results := make([]*Species, len(batch))

		var wg sync.WaitGroup
		for i, p := range batch {
			wg.Add(1)
			go func(i int, p pending) {
				defer wg.Done()
				detail, err := l.Client.GetDetail(ctx, p.id)
				if err != nil {
					results[i] = &Species{ID: p.id, Name: p.name}
					return
				}
				results[i] = &Species{
					ID:     detail.ID,
					Name:   detail.Name,
					Sprite: detail.Sprite(),
					Types:  detail.TypeNames(),
				}
			}(i, p)
		}
		wg.Wait()
		list = append(list, results...)

		if total > 0 {
			pct := 20 + (end*75)/total
			report(pct, labelCount(end, total))
		}
	}
	report(100, labelCount(total, total))

	if l.Store != nil {
		_ = l.Store.WriteJSON(storage.KeySpeciesList, cacheDoc{
			FetchedAt: time.Now().UTC(),
			List:      list,
		})
	}
	return list, nil
}

// Cached returns the cached species list if it is fresh and non-empty,
// without touching the network.
func (l *Loader) Cached() ([]*Species, bool) {
	if l.Store == nil {
		return nil, false
	}
	var doc cacheDoc
	l.Store.ReadJSON(storage.KeySpeciesList, &doc)
	if len(doc.List) == 0 {
		return nil, false
	}
	if time.Since(doc.FetchedAt) >= l.TTL {
		return nil, false
	}
	return doc.List, true
}

func labelCount(n, total int) string {
	return fmt.Sprintf("%d / %d species", n, total)
}
