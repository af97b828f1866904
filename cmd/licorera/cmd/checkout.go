package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lalicorera/storefront/catalog"
	"github.com/lalicorera/storefront/session"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Check whether the order is ready for payment",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.cart.Len() == 0 {
			fmt.Println("Your cart is empty. Add products before checking out.")
			return nil
		}

		if err := a.session.LoadUser(cmd.Context()); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}
		if a.session.State() != session.StateAuthenticated {
			fmt.Println("You must log in before proceeding to payment ('licorera login').")
			return nil
		}

		u := a.session.CurrentUser()
		fmt.Printf("Order for %s <%s>:\n\n", u.Name, u.Email)
		for _, l := range a.cart.Lines() {
			fmt.Printf("  %dx %s: %s\n", l.Quantity, l.Name, catalog.FormatCOP(l.Subtotal()))
		}
		fmt.Printf("\nTotal: %s\n", catalog.FormatCOP(a.cart.Total()))
		fmt.Println("\nReady to pay. Complete the purchase through the PayU or PayPal")
		fmt.Println("gateway in the web UI ('licorera serve').")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}
