package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lalicorera/storefront/client"
	"github.com/lalicorera/storefront/session"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.session.Login(cmd.Context(), client.Credentials{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				return fmt.Errorf("invalid credentials")
			}
			return fmt.Errorf("login failed: %w", err)
		}
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in with it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.session.Register(cmd.Context(), client.Registration{
			Name:     registerName,
			Email:    registerEmail,
			Password: registerPassword,
		})
		if err != nil {
			// The account may exist by now even if the login leg failed;
			// tell the user so they retry with `licorera login`.
			return fmt.Errorf("registration failed (if the account was created, run 'licorera login'): %w", err)
		}
		fmt.Printf("Welcome, %s! You are now logged in.\n", user.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Logout()
		if err := a.cart.Clear(); err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		loadErr := a.session.LoadUser(cmd.Context())
		switch a.session.State() {
		case session.StateAuthenticated:
			u := a.session.CurrentUser()
			fmt.Printf("%s <%s>", u.Name, u.Email)
			if u.Role != "" {
				fmt.Printf(" (%s)", u.Role)
			}
			fmt.Println()
		case session.StateAuthenticating:
			fmt.Println("A session token is stored but could not be confirmed.")
			if loadErr != nil {
				fmt.Printf("  %v\n", loadErr)
			}
		default:
			fmt.Println("Not logged in.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}
