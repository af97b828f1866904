package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lalicorera/storefront/catalog"
	"github.com/lalicorera/storefront/client"
)

var (
	listPage     int
	listLimit    int
	listCategory string
	listFeatured bool
	listSearch   string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with optional filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		limit := listLimit
		if limit == 0 {
			limit = a.cfg.PageLimit
		}
		list, err := a.client.ListProducts(cmd.Context(), client.ProductQuery{
			Page:     listPage,
			Limit:    limit,
			Category: listCategory,
			Featured: listFeatured,
			Search:   listSearch,
		})
		if err != nil {
			return fmt.Errorf("listing products: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
		for _, p := range list.Products {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Category, catalog.FormatCOP(p.Price.Amount()))
		}
		w.Flush()
		fmt.Printf("\npage %d of %d (%d products)\n",
			clampPage(listPage, list.TotalPages), list.TotalPages, list.TotalProducts)
		return nil
	},
}

// clampPage bounds the requested page to what the API actually served; the
// API silently clamps out-of-range pages, so the label must too.
func clampPage(requested, totalPages int) int {
	if requested < 1 {
		requested = 1
	}
	if totalPages > 0 && requested > totalPages {
		return totalPages
	}
	return requested
}

var productsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product",
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

		fmt.Printf("%s (%s)\n", p.Name, p.ID)
		if p.Category != "" {
			fmt.Printf("  Category: %s\n", p.Category)
		}
		fmt.Printf("  Price:    %s\n", catalog.FormatCOP(p.Price.Amount()))
		if p.Stock > 0 {
			fmt.Printf("  Stock:    %d\n", p.Stock)
		}
		if p.Featured {
			fmt.Println("  Premium product")
		}
		if p.Description != "" {
			fmt.Printf("\n%s\n", p.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsShowCmd)

	productsListCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	productsListCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size (default from config)")
	productsListCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (Ron, Whisky, ...)")
	productsListCmd.Flags().BoolVar(&listFeatured, "featured", false, "Only premium products")
	productsListCmd.Flags().StringVar(&listSearch, "search", "", "Search by name")
}
