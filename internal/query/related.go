package query

import (
	"strings"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// RelatedCards finds the catalog cards for a species display name: an
// exact case-insensitive name match, or the species name followed by a
// space or hyphen ("Pikachu V", "Charizard-ex"). No fuzzy matching, so
// "Pikachu" never matches "Raichu" or "Pikachumon".
func RelatedCards(st *state.Store, speciesName string) []*catalog.Card {
	if st.Catalog == nil {
		return nil
	}
	name := strings.ToLower(strings.TrimSpace(speciesName))
	if name == "" {
		return nil
	}
	var out []*catalog.Card
	for _, card := range st.Catalog.Cards {
		cn := strings.ToLower(card.Name)
		if cn == name ||
			strings.HasPrefix(cn, name+" ") ||
			strings.HasPrefix(cn, name+"-") {
			out = append(out, card)
		}
	}
	return out
}
