package app

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/tui"
	"github.com/pkmn-tools/dexctl/internal/util"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open the interactive catalog browser. Keys: j/k move, enter expands a
set, space toggles owned, w toggles wishlist, / searches, tab cycles
the ownership filter, p hides Pocket sets, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse()
		},
	}
}

func runBrowse() error {
	if !util.IsTTY() {
		return errors.New("browse needs a terminal")
	}
	if err := loadCatalog(); err != nil {
		return err
	}
	return tui.RunBrowse(engine, cfg.Catalog.PocketSeries)
}
