package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/render"
	"github.com/pkmn-tools/dexctl/internal/species"
)

type statusOutput struct {
	Cards struct {
		Owned   int     `json:"owned"`
		Total   int     `json:"total"`
		Percent float64 `json:"percent"`
	} `json:"cards"`
	Dex struct {
		Registered int     `json:"registered"`
		Total      int     `json:"total"`
		Percent    float64 `json:"percent"`
	} `json:"dex"`
	Collections int `json:"collections"`
	Members     int `json:"collection_members"`
}

func newStatusCmd() *cobra.Command {
	var (
		hidePocket bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show collection and living-dex progress",
		Long: `Show an overview: cards owned vs. catalog total, dex registration per
generation, and a summary of your collections.

Examples:
  dexctl status                 Overview of everything
  dexctl status --hide-pocket   Exclude Pocket-series cards from the counts
  dexctl status --json          Machine-readable JSON output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			// Dex stats come from the cache only; status never triggers a
			// network fetch.
			if list, ok := speciesLoader().Cached(); ok {
				st.Species = list
			}

			cardStats := query.CatalogStats(st, hidePocket, cfg.Catalog.PocketSeries)
			dexStats := query.DexStats(st)

			if jsonOut {
				var out statusOutput
				out.Cards.Owned = cardStats.Owned
				out.Cards.Total = cardStats.Total
				out.Cards.Percent = cardStats.Percent()
				out.Dex.Registered = dexStats.Owned
				out.Dex.Total = dexStats.Total
				out.Dex.Percent = dexStats.Percent()
				for _, s := range query.ListCollections(st) {
					out.Collections++
					out.Members += s.Stats.Total
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			r := render.New(os.Stdout)

			header("Cards")
			fmt.Println("  " + render.StatLine(cardStats))

			header("Living dex")
			fmt.Println("  " + render.StatLine(dexStats))
			if dexStats.Total > 0 {
				for _, g := range species.Generations {
					gs := query.GenStats(st, g.Gen)
					if gs.Total == 0 {
						continue
					}
					fmt.Printf("  gen %d  %3d/%3d  %s\n", g.Gen, gs.Owned, gs.Total, render.Bar(gs.Percent(), 12))
				}
			}

			header("Collections")
			r.CollectionsList(st, query.ListCollections(st), false)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hidePocket, "hide-pocket", false, "Exclude Pocket-series cards from the counts")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
