package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/internal/demos"
)

var (
	demoEnvFile string
	demoScript  string
	demoDebug   bool
)

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run a demo window",
	Long: `Run one of the bundled demo windows.

Available subcommands:
  list      - List available demos`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demos",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demos:")
		fmt.Fprintln(out)
		for _, d := range demos.All() {
			fmt.Fprintf(out, "  %-10s %s\n", d.Name, d.Description)
		}
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoEnvFile, "env", "", "YAML file overriding theme keys")
	demoCmd.Flags().StringVar(&demoScript, "script", "", "JSON test script to drive the window")
	demoCmd.Flags().BoolVar(&demoDebug, "debug", false, "log pass timings")
	demoCmd.AddCommand(demoListCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	d, err := demos.Find(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if demoScript != "" {
		cfg.TestScript = demoScript
	}
	if demoEnvFile != "" {
		cfg.EnvFile = demoEnvFile
	}
	cfg.Debug = cfg.Debug || demoDebug

	env := canopy.DefaultTheme()
	if cfg.EnvFile != "" {
		overrides, err := canopy.LoadEnvFile(cfg.EnvFile)
		if err != nil {
			return err
		}
		env = env.Merge(overrides)
	}
	return d.Run(cfg, env)
}
