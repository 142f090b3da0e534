// invaders is a small arcade shooter: steer the ship, fire lasers and clear
// the bug formation before it sweeps down the screen.
//
// Usage:
//
//	invaders list             - List available games
//	invaders play             - Play in the terminal
//	invaders window           - Play in a desktop window
//	invaders run              - Run a scripted headless simulation
//	invaders config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Load configuration from a YAML file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Loaded before any subcommand runs
	appConfig       = config.DefaultInvadersConfig()
	appConfigSource = config.SourceEmbedded
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down the bug formation",
	Long: `Invaders is a small arcade shooter. A ship at the bottom of the arena
fires lasers at a formation of bugs that sweeps left and right and steps
down at each edge.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  run      - Headless scripted run, prints a summary
  config   - Print the effective YAML configuration

Examples:
  invaders play
  invaders window --scale 2
  invaders run --frames 600 --fire-every 10 --hold left
  invaders config > my-invaders.yaml
  invaders play --config ./my-invaders.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and hands it to the game package
// before registry.Create builds an instance.
func loadConfig(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, source, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	appConfigSource = source
	invaders.SetConfig(cfg)
	return nil
}

// newLogger builds the application logger. fallback receives logs when no
// --log-file is given; the returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	logger.Debug("config loaded", "source", appConfigSource)
	return logger, closeFn, nil
}

// fail prints an error the way every subcommand reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
