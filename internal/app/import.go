package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/query"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tracking data from an export file",
		Long: `Replace the local tracking data with the contents of an export file.
Sections missing from the file keep their current local values; a
malformed file changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if _, err := engine.Import(data); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}
			ok("imported %s", args[0])
			fmt.Printf("  %d owned card(s), %d dex registration(s), %d collection(s)\n",
				st.OwnedCount(), len(st.DexStatus), len(query.ListCollections(st)))
			return nil
		},
	}
}
