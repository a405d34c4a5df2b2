package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonarun/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in runner configuration as YAML. Save it to
$XDG_CONFIG_HOME/bonarun/runner.yaml or pass it with --config to tweak
the track.

With --check the effective configuration (after --config and the search
path) is validated and printed instead.

Examples:
  bonarun config > runner.yaml
  bonarun config --check --config ./runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate and print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagCheck {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	out, err := cfg.Encode()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
