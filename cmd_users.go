package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the user registry",
	}

	cmd.AddCommand(
		newUsersRegisterCmd(a),
		newUsersListCmd(a),
		newUsersVerifyCmd(a))
	return cmd
}

// ask returns v, or the answer to label when v is empty.
func ask(a *app, v, label string) (string, error) {
	if v != "" {
		return v, nil
	}
	return a.prompt.Line(label)
}

func newUsersRegisterCmd(a *app) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user, prompting for anything not given",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := ask(a, name, "Enter your name: ")
			if err != nil {
				return err
			}

			e, err := ask(a, email, "Enter your email: ")
			if err != nil {
				return err
			}

			password, err := a.prompt.Secret("Enter your password: ")
			if err != nil {
				return err
			}

			u, err := a.ctx.UserStore().Register(n, e, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "User %s registered successfully!\n", u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "user email")

	return cmd
}

func newUsersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.ctx.UserStore().List()
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Fprintln(a.out, "No users registered yet.")
				return nil
			}

			fmt.Fprintf(a.out, "%-20s %-30s\n", "Name", "Email")
			fmt.Fprintln(a.out, strings.Repeat("-", 55))
			for _, u := range users {
				fmt.Fprintf(a.out, "%-20s %-30s\n", u.Name, u.Email)
			}
			fmt.Fprintln(a.out, strings.Repeat("-", 55))
			return nil
		},
	}
}

func newUsersVerifyCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ask(a, email, "Enter your email: ")
			if err != nil {
				return err
			}

			password, err := a.prompt.Secret("Enter your password: ")
			if err != nil {
				return err
			}

			u, err := a.ctx.UserStore().Authenticate(e, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Welcome back, %s.\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")

	return cmd
}
