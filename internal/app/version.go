package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion stores the build version injected by main.
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dexctl %s (%s, %s/%s)\n", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
