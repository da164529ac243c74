package catalog

import "sort"

// Index is a card-by-identifier lookup, built once after load and
// read-only afterward.
type Index map[string]*Card

// BuildIndex indexes every card in the catalog by id.
func BuildIndex(c *Catalog) Index {
	idx := make(Index, len(c.Cards))
	for _, card := range c.Cards {
		idx[card.ID] = card
	}
	return idx
}

// SeriesList returns the distinct set series names, sorted.
func SeriesList(c *Catalog) []string {
	seen := map[string]bool{}
	for _, s := range c.Sets {
		if s.Series != "" {
			seen[s.Series] = true
		}
	}
	list := make([]string, 0, len(seen))
	for name := range seen {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
