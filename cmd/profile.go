package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/store"
	"github.com/ramanasai/smartstep/internal/utils"
	"github.com/ramanasai/smartstep/internal/validate"
)

var (
	profileUser   string
	profileName   string
	profileAge    string
	profileWeight string
	profileHeight string
	profileOutput string
)

// profileCmd shows a profile, or updates it when any field flag is given.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update a user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := strings.TrimSpace(profileUser)
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		client := newClient()
		ctx := cmd.Context()

		current, err := client.GetProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("name") || flags.Changed("age") || flags.Changed("weight") || flags.Changed("height") {
			p := store.Profile{UserID: userID}
			if current != nil {
				p = *current
			}
			if flags.Changed("name") {
				p.Name = strings.TrimSpace(validate.Name(profileName))
			}
			for _, f := range []struct {
				flag    string
				value   string
				decimal bool
				dst     *store.Numeric
			}{
				{"age", profileAge, false, &p.Age},
				{"weight", profileWeight, true, &p.Weight},
				{"height", profileHeight, true, &p.Height},
			} {
				if !flags.Changed(f.flag) {
					continue
				}
				v := strings.TrimSpace(f.value)
				if validate.Numeric(v, f.decimal) != v {
					return fmt.Errorf("--%s must be a number, got %q", f.flag, f.value)
				}
				*f.dst = store.Numeric(v)
			}

			if err := client.SaveProfile(ctx, p); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			success(cmd.OutOrStdout(), "Profile updated successfully.")
			current = &p
		}

		r := utils.NewRenderer(&utils.RenderConfig{
			Format: utils.ParseFormat(profileOutput),
			Width:  utils.DefaultRenderConfig().Width,
			Color:  true,
		})
		out, err := r.RenderProfile(current)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVarP(&profileUser, "user", "u", "", "user id returned by register/login")
	profileCmd.Flags().StringVar(&profileName, "name", "", "full name")
	profileCmd.Flags().StringVar(&profileAge, "age", "", "age in years")
	profileCmd.Flags().StringVar(&profileWeight, "weight", "", "weight in kg")
	profileCmd.Flags().StringVar(&profileHeight, "height", "", "height in cm")
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "default", "output format: default|json|compact")
}
