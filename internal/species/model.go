package species

// Species is one Pokédex entry (distinct from a TCG card).
type Species struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Sprite string   `json:"sprite,omitempty"`
	Types  []string `json:"types,omitempty"`
}

// Generation is a fixed numbered range of species numbers.
type Generation struct {
	Gen   int
	Name  string
	Start int
	End   int
}

// Generations lists the fixed, non-overlapping generation ranges, sorted
// ascending by start. Exhaustive within 1..1025.
var Generations = []Generation{
	{1, "Generation I — Kanto", 1, 151},
	{2, "Generation II — Johto", 152, 251},
	{3, "Generation III — Hoenn", 252, 386},
	{4, "Generation IV — Sinnoh", 387, 493},
	{5, "Generation V — Unova", 494, 649},
	{6, "Generation VI — Kalos", 650, 721},
	{7, "Generation VII — Alola", 722, 809},
	{8, "Generation VIII — Galar", 810, 905},
	{9, "Generation IX — Paldea", 906, 1025},
}

// Unknown is the sentinel generation for numbers outside every range.
var Unknown = Generation{0, "Unknown", 0, 0}

// GenOf maps a species number to its generation, or Unknown.
func GenOf(id int) Generation {
	for _, g := range Generations {
		if id >= g.Start && id <= g.End {
			return g
		}
	}
	return Unknown
}

// GenByNumber returns the generation with the given number, or Unknown.
func GenByNumber(gen int) Generation {
	for _, g := range Generations {
		if g.Gen == gen {
			return g
		}
	}
	return Unknown
}
