package main

import (
	"os"

	"github.com/spf13/cobra"

	"playbook-backend/internal/shared/config"
	"playbook-backend/internal/shared/telemetry"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "playbookctl",
	Short: "Parse AI readiness and toolbox reports, render playbooks offline",
	Long: `playbookctl runs the report parser and the playbook renderer without the
HTTP service. Configuration is read the same way as the API server
(config.yaml, .env files and environment variables).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c

		level, _ := cmd.Flags().GetString("log-level")
		return telemetry.Init(level, "console")
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		telemetry.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
