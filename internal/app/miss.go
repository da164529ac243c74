package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/render"
)

func newMissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "miss <card-id>...",
		Short: "Mark cards as not owned",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			r := render.New(os.Stdout)
			opts := render.ApplyOptions{
				Catalog: render.CatalogOptions{PocketSeries: cfg.Catalog.PocketSeries},
			}
			for _, id := range args {
				if st.CardIndex[id] == nil {
					warn("unknown card %q, skipped", id)
					continue
				}
				patches, err := engine.SetUnowned(id)
				if err != nil {
					return fmt.Errorf("unmarking %s: %w", id, err)
				}
				if len(patches) == 0 {
					fmt.Printf("%s already missing\n", id)
					continue
				}
				r.Apply(st, opts, patches)
			}
			return nil
		},
	}
}
