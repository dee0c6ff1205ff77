package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/config"
	"github.com/ramanasai/smartstep/internal/version"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		written, err := config.WriteDefault(path)
		if err != nil {
			return err
		}
		if !written {
			warning(cmd.OutOrStdout(), "%s already exists, left untouched", path)
			return nil
		}
		success(cmd.OutOrStdout(), "wrote %s", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
