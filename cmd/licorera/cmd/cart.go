package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lalicorera/storefront/catalog"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		lines := a.cart.Lines()
		if len(lines) == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
		for _, l := range lines {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				l.ID, l.Name, l.Quantity,
				catalog.FormatCOP(l.Price.Amount()),
				catalog.FormatCOP(l.Subtotal()))
		}
		w.Flush()
		fmt.Printf("\nTotal: %s\n", catalog.FormatCOP(a.cart.Total()))
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.client.GetProduct(cmd.Context(), catalog.ID(args[0]))
		if err != nil {
			return fmt.Errorf("fetching product %s: %w", args[0], err)
		}
		if err := a.cart.Add(*p); err != nil {
			return err
		}
		fmt.Printf("Added %s. Cart has %d line(s), total %s.\n",
			p.Name, a.cart.Len(), catalog.FormatCOP(a.cart.Total()))
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.cart.Remove(catalog.ID(args[0])); err != nil {
			return err
		}
		fmt.Printf("Cart has %d line(s), total %s.\n",
			a.cart.Len(), catalog.FormatCOP(a.cart.Total()))
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %q", args[1])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if n < 1 {
			fmt.Println("Quantities below 1 are ignored; use 'cart remove' to drop a line.")
			return nil
		}
		if err := a.cart.SetQuantity(catalog.ID(args[0]), n); err != nil {
			return err
		}
		fmt.Printf("Cart has %d line(s), total %s.\n",
			a.cart.Len(), catalog.FormatCOP(a.cart.Total()))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.cart.Clear(); err != nil {
			return err
		}
		fmt.Println("Cart cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartSetCmd, cartClearCmd)
}
