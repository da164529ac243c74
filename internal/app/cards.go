package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/render"
	"github.com/pkmn-tools/dexctl/internal/state"
)

func newCardsCmd() *cobra.Command {
	var (
		search     string
		series     string
		filter     string
		hidePocket bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"ls"},
		Short:   "List catalog sets and cards with ownership marks",
		Long: `List the card catalog grouped by set, newest sets first. Filters
combine; the search matches card names and set names.

Examples:
  dexctl cards                          Per-set summary
  dexctl cards -v                       Every card line
  dexctl cards --search pikachu -v      Search across the catalog
  dexctl cards --filter missing -v      Only cards you do not own
  dexctl cards --series "Scarlet & Violet"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			f := query.CatalogFilter{
				Search:       search,
				Series:       series,
				Ownership:    ownershipFromFlag(filter),
				HidePocket:   hidePocket,
				PocketSeries: cfg.Catalog.PocketSeries,
			}
			groups := query.ListCatalog(st, f)
			if len(groups) == 0 {
				fmt.Println("No cards match.")
				return nil
			}
			r := render.New(os.Stdout)
			r.CatalogListing(st, groups, verbose)
			fmt.Println()
			stats := query.CatalogStats(st, hidePocket, cfg.Catalog.PocketSeries)
			fmt.Println("total: " + render.StatLine(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on card or set name")
	cmd.Flags().StringVar(&series, "series", "", "Exact series name filter")
	cmd.Flags().StringVar(&filter, "filter", "all", "Ownership filter: all, have, missing")
	cmd.Flags().BoolVar(&hidePocket, "hide-pocket", false, "Exclude Pocket-series sets")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every card line")
	return cmd
}

func ownershipFromFlag(s string) state.OwnershipFilter {
	switch s {
	case "have", "owned", "registered", "obtained":
		return state.FilterHave
	case "missing":
		return state.FilterMissing
	default:
		return state.FilterAll
	}
}
