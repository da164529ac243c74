package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/render"
	"github.com/pkmn-tools/dexctl/internal/state"
)

func newCollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coll",
		Short: "Manage named card collections",
		Long: `Manage named card collections. The ⭐ Wishlist is always present and
cannot be deleted; every other collection is yours to create and drop.
Collections accept either their id or their exact name.`,
	}
	cmd.AddCommand(
		newCollListCmd(),
		newCollCreateCmd(),
		newCollDeleteCmd(),
		newCollShowCmd(),
		newCollAddCmd(),
		newCollAddVisibleCmd(),
		newCollRemoveCmd(),
		newCollObtainedCmd(),
		newCollCommentCmd(),
	)
	return cmd
}

// resolveCollection accepts a collection id or an exact name.
func resolveCollection(arg string) (string, error) {
	if st.Collections[arg] != nil {
		return arg, nil
	}
	for id, coll := range st.Collections {
		if coll.Name == arg {
			return id, nil
		}
	}
	if strings.EqualFold(arg, "wishlist") {
		return state.WishlistID, nil
	}
	return "", fmt.Errorf("unknown collection %q", arg)
}

func newCollListCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List collections, wishlist first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			r := render.New(os.Stdout)
			r.CollectionsList(st, query.ListCollections(st), verbose)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Flag members missing from the catalog")
	return cmd
}

func newCollCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _, err := engine.CreateCollection(args[0])
			if err != nil {
				return err
			}
			ok("created %q (%s)", strings.TrimSpace(args[0]), id)
			return nil
		},
	}
}

func newCollDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <collection>",
		Aliases: []string{"rm"},
		Short:   "Delete a collection (the wishlist is protected)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			coll := st.Collections[id]
			if !force && len(coll.Cards) > 0 {
				return fmt.Errorf("%q has %d member(s); pass --force to delete anyway", coll.Name, len(coll.Cards))
			}
			if _, err := engine.DeleteCollection(id); err != nil {
				return err
			}
			ok("deleted %q", coll.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even when the collection has members")
	return cmd
}

func newCollShowCmd() *cobra.Command {
	var (
		search string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "show <collection>",
		Short: "List a collection's members in the order they were added",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cmd.Help()
			}
			if err := loadCatalog(); err != nil {
				return err
			}
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			coll := st.Collections[id]
			entries := query.ListCollection(st, id, query.CollectionFilter{
				Search:    search,
				Ownership: ownershipFromFlag(filter),
			})

			header("%s", coll.Name)
			stats := query.CollectionStats(st, id)
			fmt.Printf("  %d/%d obtained  %s\n", stats.Owned, stats.Total, render.Bar(stats.Percent(), 16))
			if n := query.DanglingCount(st, id); n > 0 {
				warn("%d member(s) no longer in the catalog", n)
			}
			if len(entries) == 0 {
				fmt.Println("  no members match")
				return nil
			}
			fmt.Println()
			render.New(os.Stdout).CollectionDetail(st, entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on member card names")
	cmd.Flags().StringVar(&filter, "filter", "all", "Status filter: all, obtained, missing")
	return cmd
}

func newCollAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection> <card-id>...",
		Short: "Add cards to a collection",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			var ids []string
			for _, cardID := range args[1:] {
				if st.CardIndex[cardID] == nil {
					warn("unknown card %q, skipped", cardID)
					continue
				}
				ids = append(ids, cardID)
			}
			added, _, err := engine.AddCardsToCollection(id, ids)
			if err != nil {
				return err
			}
			ok("added %d card(s) to %q", added, st.Collections[id].Name)
			return nil
		},
	}
}

func newCollAddVisibleCmd() *cobra.Command {
	var (
		search     string
		series     string
		filter     string
		hidePocket bool
	)

	cmd := &cobra.Command{
		Use:   "add-visible <collection>",
		Short: "Add every card matching the given filters",
		Long: `Add every card the given filters would show to a collection in one
shot. Useful for seeding a set-completion collection:

  dexctl coll add-visible "Base chase" --series "Scarlet & Violet" --filter missing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			ids := query.VisibleCardIDs(st, query.CatalogFilter{
				Search:       search,
				Series:       series,
				Ownership:    ownershipFromFlag(filter),
				HidePocket:   hidePocket,
				PocketSeries: cfg.Catalog.PocketSeries,
			})
			if len(ids) == 0 {
				fmt.Println("No cards match.")
				return nil
			}
			added, _, err := engine.AddCardsToCollection(id, ids)
			if err != nil {
				return err
			}
			ok("added %d of %d visible card(s) to %q", added, len(ids), st.Collections[id].Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on card or set name")
	cmd.Flags().StringVar(&series, "series", "", "Exact series name filter")
	cmd.Flags().StringVar(&filter, "filter", "all", "Ownership filter: all, have, missing")
	cmd.Flags().BoolVar(&hidePocket, "hide-pocket", false, "Exclude Pocket-series sets")
	return cmd
}

func newCollRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <collection> <card-id>...",
		Short: "Remove cards from a collection",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			for _, cardID := range args[1:] {
				if _, err := engine.RemoveCardFromCollection(id, cardID); err != nil {
					return err
				}
			}
			ok("removed %d card(s) from %q", len(args)-1, st.Collections[id].Name)
			return nil
		},
	}
}

func newCollObtainedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "obtained <collection> <card-id>...",
		Short: "Toggle the obtained mark on collection members",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			coll := st.Collections[id]
			for _, cardID := range args[1:] {
				if coll.Cards[cardID] == nil {
					warn("%s is not in %q, skipped", cardID, coll.Name)
					continue
				}
				if _, err := engine.ToggleObtained(id, cardID); err != nil {
					return err
				}
				if coll.Cards[cardID].Obtained {
					ok("%s obtained", cardID)
				} else {
					fmt.Printf("%s no longer obtained\n", cardID)
				}
			}
			return nil
		},
	}
}

func newCollCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <collection> <card-id> [text]",
		Short: "Set or clear a note on a collection member",
		Long: `Set a note on a collection member, shown next to it in listings.
Omit the text (or pass an empty string) to clear the note.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCollection(args[0])
			if err != nil {
				return err
			}
			if st.Collections[id].Cards[args[1]] == nil {
				return fmt.Errorf("%s is not in %q", args[1], st.Collections[id].Name)
			}
			text := ""
			if len(args) == 3 {
				text = args[2]
			}
			if _, err := engine.SetComment(id, args[1], text); err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				ok("comment cleared on %s", args[1])
			} else {
				ok("comment set on %s", args[1])
			}
			return nil
		},
	}
}
