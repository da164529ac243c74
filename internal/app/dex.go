package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/render"
	"github.com/pkmn-tools/dexctl/internal/species"
)

func newDexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dex",
		Short: "Track the living dex",
		Long: `Track which Pokédex species you have registered, grouped by generation.
The species list comes from PokeAPI and is cached locally; run
'dexctl fetchdex' to refresh it.`,
	}
	cmd.AddCommand(
		newDexListCmd(),
		newDexRegisterCmd(),
		newDexUnregisterCmd(),
		newDexShowCmd(),
	)
	return cmd
}

func newDexListCmd() *cobra.Command {
	var (
		search  string
		gen     int
		filter  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List dex entries grouped by generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSpecies(cmd.Context(), false); err != nil {
				return err
			}
			groups := query.ListDex(st, query.DexFilter{
				Search:    search,
				Gen:       gen,
				Ownership: ownershipFromFlag(filter),
			})
			if len(groups) == 0 {
				fmt.Println("No species match.")
				return nil
			}
			r := render.New(os.Stdout)
			r.DexListing(st, groups, verbose)
			fmt.Println()
			fmt.Println("total: " + render.StatLine(query.DexStats(st)))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on species name or dex number")
	cmd.Flags().IntVar(&gen, "gen", 0, "Only this generation (1-9)")
	cmd.Flags().StringVar(&filter, "filter", "all", "Status filter: all, registered, missing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every species line")
	return cmd
}

func newDexRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "register <species>...",
		Aliases: []string{"reg"},
		Short:   "Register species as caught (by number, name, or range)",
		Long: `Register dex entries. Each argument is a dex number, a species name, or
an inclusive number range:

  dexctl dex register 25 bulbasaur 150-151`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSpecies(cmd.Context(), false); err != nil {
				return err
			}
			r := render.New(os.Stdout)
			ids, err := expandSpeciesArgs(args)
			if err != nil {
				return err
			}
			for _, id := range ids {
				patches, err := engine.SetRegistered(id)
				if err != nil {
					return err
				}
				if len(patches) == 0 {
					fmt.Printf("#%04d already registered\n", id)
					continue
				}
				r.Apply(st, render.ApplyOptions{}, patches)
			}
			return nil
		},
	}
}

func newDexUnregisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unregister <species>...",
		Aliases: []string{"unreg"},
		Short:   "Clear species registrations",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSpecies(cmd.Context(), false); err != nil {
				return err
			}
			r := render.New(os.Stdout)
			ids, err := expandSpeciesArgs(args)
			if err != nil {
				return err
			}
			for _, id := range ids {
				patches, err := engine.SetUnregistered(id)
				if err != nil {
					return err
				}
				if len(patches) == 0 {
					fmt.Printf("#%04d not registered\n", id)
					continue
				}
				r.Apply(st, render.ApplyOptions{}, patches)
			}
			return nil
		},
	}
}

// expandSpeciesArgs resolves a mix of numbers, names, and inclusive
// "lo-hi" ranges into dex numbers. Unknown names are warned and skipped;
// a malformed range is an error.
func expandSpeciesArgs(args []string) ([]int, error) {
	var ids []int
	for _, arg := range args {
		if lo, hi, ok := parseRange(arg); ok {
			if lo > hi {
				return nil, fmt.Errorf("bad range %q", arg)
			}
			for id := lo; id <= hi; id++ {
				ids = append(ids, id)
			}
			continue
		}
		id, err := resolveSpeciesID(arg)
		if err != nil {
			warn("%v, skipped", err)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseRange(s string) (lo, hi int, ok bool) {
	i := strings.IndexByte(s, '-')
	if i <= 0 || i == len(s)-1 {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(s[:i])
	hi, err2 := strconv.Atoi(s[i+1:])
	if err1 != nil || err2 != nil || lo < 1 {
		return 0, 0, false
	}
	return lo, hi, true
}

func newDexShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <species>",
		Short: "Show one dex entry and its cards",
		Long: `Show a single species: generation, types, registration, and the catalog
cards for that Pokémon (exact name matches plus suffixed forms like
"Pikachu V" or "Pikachu-ex").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSpecies(cmd.Context(), false); err != nil {
				return err
			}
			id, err := resolveSpeciesID(args[0])
			if err != nil {
				return err
			}
			sp := query.SpeciesByID(st, id)
			if sp == nil {
				return fmt.Errorf("species #%d is outside the dex", id)
			}

			header("#%04d %s", sp.ID, sp.Name)
			gen := species.GenOf(sp.ID)
			fmt.Printf("  generation: %s\n", gen.Name)
			if len(sp.Types) > 0 {
				fmt.Printf("  types:      %s\n", strings.Join(sp.Types, "/"))
			}
			if st.IsRegistered(sp.ID) {
				fmt.Printf("  registered: %s\n", color.GreenString("yes"))
			} else {
				fmt.Printf("  registered: no\n")
			}

			if err := loadCatalog(); err != nil {
				warn("catalog unavailable, skipping card list: %v", err)
				return nil
			}
			cards := query.RelatedCards(st, sp.Name)
			if len(cards) == 0 {
				fmt.Println("  no cards in the catalog")
				return nil
			}
			fmt.Printf("\n%d card(s):\n", len(cards))
			r := render.New(os.Stdout)
			for _, c := range cards {
				r.CardLine(st, c.ID)
			}
			return nil
		},
	}
}
