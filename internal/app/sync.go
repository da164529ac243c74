package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/tcgio"
	"github.com/pkmn-tools/dexctl/internal/tui"
	"github.com/pkmn-tools/dexctl/internal/util"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rebuild the local card catalog from the TCG API",
		Long: `Download every set and card from the Pokémon TCG API and rebuild the
local catalog file. Set ` + "`tcg.api_key_env`" + ` (default POKEMONTCG_API_KEY)
for higher rate limits; the API works without a key, just slower.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := tcgio.New(cfg.TCG.APIBase, cfg.TCG.APIKey)
			path := cfg.EffectiveCatalogPath()

			if !util.IsTTY() {
				cat, err := tcgio.BuildCatalog(cmd.Context(), client, nil)
				if err != nil {
					return err
				}
				if err := tcgio.WriteCatalog(path, cat); err != nil {
					return err
				}
				ok("catalog written to %s (%d cards, %d sets)", path, cat.TotalCards, cat.TotalSets)
				return nil
			}

			ch := make(chan tui.ProgressUpdate, 8)
			type result struct {
				cards, sets int
				err         error
			}
			resCh := make(chan result, 1)
			go func() {
				progress := func(fetched, total int) {
					pct := 0
					if total > 0 {
						pct = fetched * 100 / total
					}
					select {
					case ch <- tui.ProgressUpdate{Pct: pct, Label: fmt.Sprintf("%s/%s cards", util.GroupInt(fetched), util.GroupInt(total))}:
					default:
					}
				}
				cat, err := tcgio.BuildCatalog(cmd.Context(), client, progress)
				if err == nil {
					err = tcgio.WriteCatalog(path, cat)
				}
				close(ch)
				if err != nil {
					resCh <- result{err: err}
					return
				}
				resCh <- result{cards: cat.TotalCards, sets: cat.TotalSets}
			}()

			if err := tui.ShowProgress("Syncing card catalog…", ch); err != nil {
				return err
			}
			res := <-resCh
			if res.err != nil {
				return res.err
			}
			ok("catalog written to %s (%d cards, %d sets)", path, res.cards, res.sets)
			return nil
		},
	}
}
