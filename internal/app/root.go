package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/config"
	"github.com/pkmn-tools/dexctl/internal/mutate"
	"github.com/pkmn-tools/dexctl/internal/state"
	"github.com/pkmn-tools/dexctl/internal/storage"
	"github.com/pkmn-tools/dexctl/internal/util"
)

var (
	cfg    *config.Config
	store  *storage.Store
	st     *state.Store
	engine *mutate.Engine

	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "dexctl",
	Short: "Track a personal Pokémon card collection and living dex",
	Long: `dexctl tracks which trading cards you own, which Pokédex entries you
have registered, and named card collections (including a pinned wishlist),
all stored locally.

The card catalog is a static local file built by 'dexctl sync'; the
species list comes from PokeAPI and is cached for 30 days.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if util.IsTTY() {
			return runBrowse()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store = storage.Open(cfg.DataDir + "/state")
		st = state.Hydrate(store)
		engine = mutate.New(st, store)
		if st.InitWishlist() {
			if err := engine.SaveAll(); err != nil {
				return fmt.Errorf("initializing wishlist: %w", err)
			}
		}
		return nil
	}

	rootCmd.AddCommand(
		newStatusCmd(),
		newCardsCmd(),
		newCardCmd(),
		newHaveCmd(),
		newMissCmd(),
		newDexCmd(),
		newCollCmd(),
		newExportCmd(),
		newImportCmd(),
		newSyncCmd(),
		newFetchdexCmd(),
		newBrowseCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
