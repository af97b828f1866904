package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lalicorera/storefront/catalog"
	"github.com/lalicorera/storefront/client"
)

// Admin commands require an authenticated admin session; authorization is
// enforced by the remote API, not here.

var (
	newName        string
	newDescription string
	newCategory    string
	newPrice       float64
	newStock       int
	newFeatured    bool

	updName        string
	updDescription string
	updCategory    string
	updPrice       float64
	updStock       int
	updFeatured    bool

	updUserName  string
	updUserEmail string
	updUserRole  string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office operations (admin accounts only)",
}

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage catalog products",
}

var adminProductsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a product to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}

		created, err := a.client.CreateProduct(ctx, catalog.Product{
			Name:        newName,
			Description: newDescription,
			Category:    newCategory,
			Price:       catalog.NewPrice(newPrice),
			Stock:       newStock,
			Featured:    newFeatured,
		})
		if err != nil {
			return fmt.Errorf("creating product: %w", err)
		}
		fmt.Printf("Created %s (%s).\n", created.Name, created.ID)
		return nil
	},
}

var adminProductsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product's catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}

		id := catalog.ID(args[0])
		p, err := a.client.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching product %s: %w", id, err)
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			p.Name = updName
		}
		if flags.Changed("description") {
			p.Description = updDescription
		}
		if flags.Changed("category") {
			p.Category = updCategory
		}
		if flags.Changed("price") {
			p.Price = catalog.NewPrice(updPrice)
		}
		if flags.Changed("stock") {
			p.Stock = updStock
		}
		if flags.Changed("featured") {
			p.Featured = updFeatured
		}

		updated, err := a.client.UpdateProduct(ctx, id, *p)
		if err != nil {
			return fmt.Errorf("updating product %s: %w", id, err)
		}
		fmt.Printf("Updated %s (%s).\n", updated.Name, updated.ID)
		return nil
	},
}

var adminProductsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}
		if err := a.client.DeleteProduct(ctx, catalog.ID(args[0])); err != nil {
			return fmt.Errorf("deleting product %s: %w", args[0], err)
		}
		fmt.Printf("Deleted product %s.\n", args[0])
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage store accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}
		users, err := a.client.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
		}
		return w.Flush()
	},
}

var adminUsersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}
		u, err := a.client.GetUser(ctx, catalog.ID(args[0]))
		if err != nil {
			return fmt.Errorf("fetching user %s: %w", args[0], err)
		}
		fmt.Printf("%s <%s>", u.Name, u.Email)
		if u.Role != "" {
			fmt.Printf(" (%s)", u.Role)
		}
		fmt.Println()
		return nil
	},
}

var adminUsersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}
		upd := client.UserUpdate{Name: updUserName, Email: updUserEmail, Role: updUserRole}
		u, err := a.client.UpdateUser(ctx, catalog.ID(args[0]), upd)
		if err != nil {
			return fmt.Errorf("updating user %s: %w", args[0], err)
		}
		fmt.Printf("Updated %s <%s>.\n", u.Name, u.Email)
		return nil
	},
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.session.LoadUser(ctx); err != nil {
			return fmt.Errorf("confirming session: %w", err)
		}
		if err := a.client.DeleteUser(ctx, catalog.ID(args[0])); err != nil {
			return fmt.Errorf("deleting user %s: %w", args[0], err)
		}
		fmt.Printf("Deleted user %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminProductsCmd, adminUsersCmd)
	adminProductsCmd.AddCommand(adminProductsCreateCmd, adminProductsUpdateCmd, adminProductsDeleteCmd)
	adminUsersCmd.AddCommand(adminUsersListCmd, adminUsersShowCmd, adminUsersUpdateCmd, adminUsersDeleteCmd)

	cf := adminProductsCreateCmd.Flags()
	cf.StringVar(&newName, "name", "", "Product name")
	cf.StringVar(&newDescription, "description", "", "Product description")
	cf.StringVar(&newCategory, "category", "", "Product category")
	cf.Float64Var(&newPrice, "price", 0, "Product price in COP")
	cf.IntVar(&newStock, "stock", 0, "Units in stock")
	cf.BoolVar(&newFeatured, "featured", false, "Premium product")
	adminProductsCreateCmd.MarkFlagRequired("name")
	adminProductsCreateCmd.MarkFlagRequired("price")

	f := adminProductsUpdateCmd.Flags()
	f.StringVar(&updName, "name", "", "Product name")
	f.StringVar(&updDescription, "description", "", "Product description")
	f.StringVar(&updCategory, "category", "", "Product category")
	f.Float64Var(&updPrice, "price", 0, "Product price in COP")
	f.IntVar(&updStock, "stock", 0, "Units in stock")
	f.BoolVar(&updFeatured, "featured", false, "Premium product")

	uf := adminUsersUpdateCmd.Flags()
	uf.StringVar(&updUserName, "name", "", "Account name")
	uf.StringVar(&updUserEmail, "email", "", "Account email")
	uf.StringVar(&updUserRole, "role", "", "Account role")
}
