// crossing is a terminal lane-crossing game: hop across roads without
// getting hit by traffic.
//
// Usage:
//
//	crossing play            - Play a round straight away
//	crossing menu            - Start menu (play, high scores, quit)
//	crossing list            - List available games
//	crossing scores          - Show the round log and best score
//	crossing serve           - Start SSH server for remote play
//	crossing config schema   - Print the JSON Schema of the config file
//	crossing config default  - Print the built-in config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible levels
//	--db <path>         - Set database path (default: ~/.crossing/crossing.db)
//	--config <path>     - Use a custom crossing.yaml
//	--log <path>        - Write the game log to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Crossing - hop across the roads in your terminal",
	Long: `Crossing is a terminal game: hop across lanes of traffic and
reach the far side without getting hit.

Available commands:
  play     - Start playing straight away
  menu     - Interactive menu
  list     - Show registered games
  scores   - View the round log
  serve    - Start SSH server for remote play
  config   - Inspect the game configuration

Examples:
  crossing play
  crossing play --seed 42 --config ./crossing.yaml
  crossing menu
  crossing serve --ssh :2222
  crossing scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/crossing.db", "Path to round log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crossing config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the game log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires the game logger and config path before any command runs.
// Bubble Tea owns the terminal, so the log only goes to a file.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	crossing.SetLogger(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
		Level:           level,
	}))
	crossing.SetConfigPath(flagConfig)
	return nil
}
