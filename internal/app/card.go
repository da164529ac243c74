package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkmn-tools/dexctl/internal/state"
)

func newCardCmd() *cobra.Command {
	var wishlist bool

	cmd := &cobra.Command{
		Use:   "card <card-id>",
		Short: "Show one card, or toggle it on the wishlist",
		Long: `Show a single card's details: set, number, rarity, ownership, wishlist
membership, and which collections it belongs to.

Examples:
  dexctl card sv1-25
  dexctl card sv1-25 --wishlist     Toggle wishlist membership`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCatalog(); err != nil {
				return err
			}
			card := st.CardIndex[args[0]]
			if card == nil {
				return fmt.Errorf("unknown card %q", args[0])
			}

			if wishlist {
				in, _, err := engine.ToggleWishlist(card.ID)
				if err != nil {
					return err
				}
				if in {
					ok("%s added to wishlist", card.Name)
				} else {
					ok("%s removed from wishlist", card.Name)
				}
				return nil
			}

			header("%s", card.Name)
			set := st.Catalog.SetOf(card)
			if set != nil {
				fmt.Printf("  set:      %s (%s)\n", set.Name, set.ID)
				if set.Series != "" {
					fmt.Printf("  series:   %s\n", set.Series)
				}
			}
			if num := card.DisplayNumber(); num != "" {
				fmt.Printf("  number:   #%s\n", num)
			}
			if card.Rarity != "" {
				fmt.Printf("  rarity:   %s\n", card.Rarity)
			}
			if st.IsOwned(card.ID) {
				fmt.Printf("  owned:    %s\n", color.GreenString("yes"))
			} else {
				fmt.Printf("  owned:    no\n")
			}
			if st.IsInWishlist(card.ID) {
				fmt.Printf("  wishlist: %s\n", color.YellowString("⭐ yes"))
			}
			for id, coll := range st.Collections {
				if id == state.WishlistID {
					continue
				}
				if coll.Cards[card.ID] != nil {
					fmt.Printf("  in:       %s\n", coll.Name)
				}
			}
			if card.ImageLarge != "" {
				fmt.Printf("  image:    %s\n", card.ImageLarge)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&wishlist, "wishlist", "w", false, "Toggle this card on the wishlist")
	return cmd
}
