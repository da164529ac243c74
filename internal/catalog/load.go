package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnavailable is returned when the catalog file cannot be read or
// parsed. Callers surface a retry hint; there are no internal retries.
var ErrUnavailable = errors.New("card catalog unavailable — run 'dexctl sync' first")

// Load reads and parses the catalog file at path. One attempt per call.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON and normalizes it to the internal shape.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	normalize(&c)
	return &c, nil
}

// normalize applies defensive defaults so the rest of the program can
// trust the catalog shape: no nil maps, no nil cards, no cards without an
// identifier, counts consistent with the data actually present.
func normalize(c *Catalog) {
	if c.Sets == nil {
		c.Sets = map[string]*Set{}
	}
	for id, s := range c.Sets {
		if s == nil {
			delete(c.Sets, id)
			continue
		}
		if s.ID == "" {
			s.ID = id
		}
	}
	kept := c.Cards[:0]
	for _, card := range c.Cards {
		if card == nil || card.ID == "" {
			continue
		}
		kept = append(kept, card)
	}
	c.Cards = kept
	if c.TotalCards != len(c.Cards) {
		c.TotalCards = len(c.Cards)
	}
	if c.TotalSets != len(c.Sets) {
		c.TotalSets = len(c.Sets)
	}
}
