package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/config"
	"github.com/ramanasai/smartstep/internal/steps"
	"github.com/ramanasai/smartstep/internal/utils"
)

var (
	stepsObjective string
	stepsOutput    string
)

// stepsCmd prints today's progress; --objective also stores a new objective.
var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Show step progress or set the daily objective",
	RunE: func(cmd *cobra.Command, args []string) error {
		objective := cfg.Steps.Objective
		if cmd.Flags().Changed("objective") {
			objective = steps.ParseObjective(stepsObjective)
			if fmt.Sprint(objective) != stepsObjective {
				warning(cmd.ErrOrStderr(), "invalid objective %q, using %d", stepsObjective, objective)
			}
			path, err := configPath()
			if err != nil {
				return err
			}
			if err := config.SetObjective(path, objective); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Daily objective set to %d steps.", objective)
		}

		r := utils.NewRenderer(&utils.RenderConfig{
			Format: utils.ParseFormat(stepsOutput),
			Width:  utils.DefaultRenderConfig().Width,
			Color:  true,
		})
		out, err := r.RenderSteps(utils.NewStepReport(cfg.Steps.Current, objective))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	stepsCmd.Flags().StringVar(&stepsObjective, "objective", "", "daily step objective to store in the config")
	stepsCmd.Flags().StringVarP(&stepsOutput, "output", "o", "default", "output format: default|json|compact")
}
