package catalog

// Card is one trading card from the static catalog. Cards never mutate
// after load.
type Card struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Number     string `json:"number,omitempty"`
	LocalID    string `json:"localId,omitempty"`
	SetID      string `json:"setId"`
	Rarity     string `json:"rarity,omitempty"`
	Supertype  string `json:"supertype,omitempty"`
	ImageSmall string `json:"imageSmall,omitempty"`
	ImageLarge string `json:"imageLarge,omitempty"`
}

// DisplayNumber returns the local collector number, falling back to the
// global number. May be empty; empty numbers sort first.
func (c *Card) DisplayNumber() string {
	if c.LocalID != "" {
		return c.LocalID
	}
	return c.Number
}

// Set is one card set from the static catalog.
type Set struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Series      string `json:"series,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"` // ISO date; empty sorts last
	Total       int    `json:"total,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	SymbolURL   string `json:"symbolUrl,omitempty"`
}

// Catalog is the full static card/set dataset produced by `dexctl sync`.
type Catalog struct {
	UpdatedAt  string          `json:"updatedAt"`
	TotalCards int             `json:"totalCards"`
	TotalSets  int             `json:"totalSets"`
	Sets       map[string]*Set `json:"sets"`
	Cards      []*Card         `json:"cards"`
}

// SetOf resolves a card's owning set, or nil for a dangling set reference.
func (c *Catalog) SetOf(card *Card) *Set {
	if card == nil {
		return nil
	}
	return c.Sets[card.SetID]
}
