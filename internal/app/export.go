package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tracking data as JSON",
		Long: `Export the owned-card set, dex registrations, and collections as one
JSON document, suitable for backup or moving between machines. Writes
to stdout unless -o is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := engine.ExportJSON()
			if err != nil {
				return err
			}
			if out == "" {
				_, err = os.Stdout.Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			ok("exported to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
