package tcgio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/util"
)

// Progress reports catalog build progress after each page.
type Progress func(fetched, total int)

// BuildCatalog fetches every set and card and assembles the local catalog
// document. Cards are sorted by set release date descending, then by
// collector number with numeric-aware ordering.
func BuildCatalog(ctx context.Context, c *Client, progress Progress) (*catalog.Catalog, error) {
	apiSets, err := c.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	sets := make(map[string]*catalog.Set, len(apiSets))
	for _, s := range apiSets {
		sets[s.ID] = &catalog.Set{
			ID:          s.ID,
			Name:        s.Name,
			Series:      s.Series,
			ReleaseDate: s.ReleaseDate,
			Total:       s.Total,
			LogoURL:     s.Images.Logo,
			SymbolURL:   s.Images.Symbol,
		}
	}

	first, err := c.ListCardsPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	total := first.TotalCount
	pages := (total + c.PageSize() - 1) / c.PageSize()

	cards := make([]*catalog.Card, 0, total)
	appendPage := func(page *CardPage) {
		for _, ac := range page.Data {
			cards = append(cards, &catalog.Card{
				ID:         ac.ID,
				Name:       ac.Name,
				Number:     ac.Number,
				SetID:      ac.Set.ID,
				Rarity:     ac.Rarity,
				Supertype:  ac.Supertype,
				ImageSmall: ac.Images.Small,
				ImageLarge: ac.Images.Large,
			})
		}
	}
	appendPage(first)
	if progress != nil {
		progress(len(cards), total)
	}

	for page := 2; page <= pages; page++ {
		// Small delay between pages to stay well inside rate limits.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
		p, err := c.ListCardsPage(ctx, page)
		if err != nil {
			return nil, err
		}
		appendPage(p)
		if progress != nil {
			progress(len(cards), total)
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		di, dj := releaseDate(sets, cards[i]), releaseDate(sets, cards[j])
		if di != dj {
			return di > dj // newest set first
		}
		return util.NaturalLess(cards[i].Number, cards[j].Number)
	})

	return &catalog.Catalog{
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
		TotalCards: len(cards),
		TotalSets:  len(sets),
		Sets:       sets,
		Cards:      cards,
	}, nil
}

func releaseDate(sets map[string]*catalog.Set, c *catalog.Card) string {
	if s := sets[c.SetID]; s != nil {
		return s.ReleaseDate
	}
	return ""
}

// WriteCatalog saves the catalog document to path via temp file + rename.
func WriteCatalog(path string, cat *catalog.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
