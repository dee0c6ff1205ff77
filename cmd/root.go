package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/api"
	"github.com/ramanasai/smartstep/internal/config"
	"github.com/ramanasai/smartstep/internal/version"
)

var (
	cfgFile   string
	serverURL string
	cfg       = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "smartstep",
	Short:         "Step counter, force-distribution analysis and profile tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		failure(rootCmd.ErrOrStderr(), "%v", err)
	}
	return err
}

func init() {
	rootCmd.Version = version.GetVersion()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/smartstep/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL, overrides server.url")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		if serverURL != "" {
			loaded.Server.URL = serverURL
		}
		cfg = loaded
		return nil
	}

	rootCmd.AddCommand(serveCmd, tuiCmd, registerCmd, loginCmd, profileCmd, stepsCmd, analyzeCmd, configCmd, versionCmd)
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.Path()
}

func newClient() *api.Client {
	return api.NewClient(cfg.Server.URL, cfg.Server.Timeout)
}
