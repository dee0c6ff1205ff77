package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/validate"
)

var (
	accountName     string
	accountEmail    string
	accountPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(validate.Name(accountName))
		email := strings.TrimSpace(accountEmail)
		if err := validate.Registration(name, email, accountPassword); err != nil {
			var problems []string
			if validate.Email(email) != nil {
				problems = append(problems, "invalid email address")
			}
			if accountPassword != "" && validate.Password(accountPassword) != nil {
				problems = append(problems, "password must be longer than 8 characters")
			}
			if len(problems) > 0 {
				return fmt.Errorf("%w: %s", err, strings.Join(problems, ", "))
			}
			return err
		}

		id, err := newClient().Register(cmd.Context(), name, email, accountPassword)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		success(cmd.OutOrStdout(), "User registered successfully.")
		info(cmd.OutOrStdout(), "user id: %s", id)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials and print the user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(accountEmail)
		if err := validate.Login(email, accountPassword); err != nil {
			return err
		}
		id, err := newClient().Login(cmd.Context(), email, accountPassword)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		success(cmd.OutOrStdout(), "Signed in.")
		info(cmd.OutOrStdout(), "user id: %s", id)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&accountName, "name", "n", "", "full name")
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVarP(&accountEmail, "email", "e", "", "email address")
		c.Flags().StringVarP(&accountPassword, "password", "p", "", "password")
	}
}
