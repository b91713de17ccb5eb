package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Run canopy demo windows",
	Long: `canopy runs the demo windows bundled with the canopy widget runtime and
helps write the TOML run configs they read.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return canopy.InitLogging(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "canopy.toml", "path to the TOML run config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+canopy.LogLevelEnvVar)
	rootCmd.AddCommand(demoCmd, configCmd)
}

// loadConfig reads the run config and applies flag overrides.
func loadConfig() (canopy.RunConfig, error) {
	cfg, err := canopy.LoadRunConfigFile(configPath)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
