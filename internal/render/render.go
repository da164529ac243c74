package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/species"
	"github.com/pkmn-tools/dexctl/internal/state"
	"github.com/pkmn-tools/dexctl/internal/util"
)

var (
	barFill  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"})
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#3A3A3A"})
	dimText  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"})
)

// Renderer writes query output as terminal text. It is the CLI's render
// sink; mutations hand it patch instructions and it reprints only what
// the patch names.
type Renderer struct {
	Out io.Writer
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

// Bar renders a fixed-width progress bar for a completion percentage.
func Bar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFill.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

// StatLine formats "owned/total  bar  pct%" with one decimal place and
// grouped counts.
func StatLine(s query.Stats) string {
	return fmt.Sprintf("%s/%s  %s  %.1f%%",
		util.GroupInt(s.Owned), util.GroupInt(s.Total), Bar(s.Percent(), 20), s.Percent())
}

// CatalogListing prints the grouped catalog view.
func (r *Renderer) CatalogListing(st *state.Store, groups []query.SetGroup, verbose bool) {
	for _, g := range groups {
		meta := g.Set.Series
		if g.Set.ReleaseDate != "" {
			if meta != "" {
				meta += " · "
			}
			meta += g.Set.ReleaseDate
		}
		fmt.Fprintf(r.Out, "%s  %s\n", color.CyanString(g.Set.Name), dimText.Render(meta))
		fmt.Fprintf(r.Out, "  %d/%d  %s\n", g.Owned, len(g.Cards), Bar(pctOf(g.Owned, len(g.Cards)), 16))
		if verbose {
			for _, c := range g.Cards {
				r.CardLine(st, c.ID)
			}
		}
	}
}

// CardLine prints one card with its ownership mark.
func (r *Renderer) CardLine(st *state.Store, cardID string) {
	card := st.CardIndex[cardID]
	if card == nil {
		return
	}
	mark := color.HiBlackString("·")
	if st.IsOwned(card.ID) {
		mark = color.GreenString("✓")
	}
	num := card.DisplayNumber()
	if num != "" {
		num = "#" + num
	}
	rarity := ""
	if card.Rarity != "" {
		rarity = "  " + dimText.Render(card.Rarity)
	}
	fmt.Fprintf(r.Out, "  %s %-18s %s %s%s\n", mark, card.ID, card.Name, dimText.Render(num), rarity)
}

// DexListing prints the generation-grouped dex view.
func (r *Renderer) DexListing(st *state.Store, groups []query.GenGroup, verbose bool) {
	for _, g := range groups {
		fmt.Fprintf(r.Out, "%s %s\n",
			color.CyanString("GEN %s", genLabel(g.Gen)), g.Gen.Name)
		fmt.Fprintf(r.Out, "  %d/%d  %s\n", g.Registered, len(g.Species), Bar(pctOf(g.Registered, len(g.Species)), 16))
		if verbose {
			for _, sp := range g.Species {
				r.SpeciesLine(st, sp)
			}
		}
	}
}

// SpeciesLine prints one dex entry with its registration mark.
func (r *Renderer) SpeciesLine(st *state.Store, sp *species.Species) {
	mark := color.HiBlackString("·")
	if st.IsRegistered(sp.ID) {
		mark = color.GreenString("✓")
	}
	types := ""
	if len(sp.Types) > 0 {
		types = "  " + dimText.Render(strings.Join(sp.Types, "/"))
	}
	fmt.Fprintf(r.Out, "  %s #%04d %s%s\n", mark, sp.ID, sp.Name, types)
}

// CollectionsList prints the collections overview, wishlist first.
func (r *Renderer) CollectionsList(st *state.Store, items []query.CollectionSummary, verbose bool) {
	for _, it := range items {
		icon := "📁"
		if it.ID == state.WishlistID {
			icon = "⭐"
		}
		fmt.Fprintf(r.Out, "%s %s  %s\n", icon, color.CyanString(it.Collection.Name), dimText.Render(it.ID))
		fmt.Fprintf(r.Out, "   %d/%d obtained  %s\n", it.Stats.Owned, it.Stats.Total, Bar(it.Stats.Percent(), 16))
		if verbose {
			if n := query.DanglingCount(st, it.ID); n > 0 {
				fmt.Fprintf(r.Out, "   %s %d member(s) no longer in the catalog\n", color.YellowString("!"), n)
			}
		}
	}
}

// CollectionDetail prints a collection's members with status marks.
func (r *Renderer) CollectionDetail(st *state.Store, entries []query.CollectionEntry) {
	for _, en := range entries {
		mark := color.HiBlackString("○")
		if en.Status.Obtained {
			mark = color.GreenString("✓")
		}
		comment := ""
		if en.Status.Comment != "" {
			comment = "  " + dimText.Render("“"+en.Status.Comment+"”")
		}
		num := en.Card.DisplayNumber()
		if num != "" {
			num = "#" + num
		}
		fmt.Fprintf(r.Out, "  %s %-18s %s %s%s\n", mark, en.Card.ID, en.Card.Name, dimText.Render(num), comment)
	}
}

func pctOf(owned, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(owned) / float64(total) * 100
}

func genLabel(g species.Generation) string {
	if g.Gen == 0 {
		return "?"
	}
	return strconv.Itoa(g.Gen)
}
