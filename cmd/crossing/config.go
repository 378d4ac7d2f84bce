package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
	Long: `Inspect the crossing configuration.

The config is looked up in this order:
  --config <path>
  ~/.crossing/configs/crossing.yaml
  ./configs/crossing.yaml
  built-in defaults`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of crossing.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in crossing.yaml",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		//nolint:errcheck // Best-effort write to stdout
		cmd.OutOrStdout().Write(config.DefaultCrossingYAML())
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the active configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := config.LoadCrossing(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %dx%d level, finish row %d, start (%d,%d)\n",
			cfg.Level.Width, cfg.Level.Height, cfg.Level.FinishRow(),
			cfg.Level.StartColumn, cfg.Level.StartRow)
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configCheckCmd)
}
