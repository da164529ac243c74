package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchdexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetchdex",
		Short: "Refresh the cached species list from PokeAPI",
		Long: `Fetch the national dex species list from PokeAPI, including names,
sprites, and types, and cache it locally. Other commands reuse the
cache until it is 30 days old; fetchdex forces a refresh now.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSpecies(cmd.Context(), true); err != nil {
				return err
			}
			ok("cached %d species", len(st.Species))
			withTypes := 0
			for _, sp := range st.Species {
				if len(sp.Types) > 0 {
					withTypes++
				}
			}
			if withTypes < len(st.Species) {
				fmt.Printf("  %d entr(ies) fetched without details; rerun to fill them in\n", len(st.Species)-withTypes)
			}
			return nil
		},
	}
}
