package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the other commands would use, as YAML.

Search order:
  --config <path>
  ~/.invaders/configs/invaders.yaml
  ./configs/invaders.yaml
  built-in defaults

The output is a complete config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data, err := config.Marshal(appConfig)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("# source: %s\n", appConfigSource)
	if _, err := os.Stdout.Write(data); err != nil {
		fail("%v", err)
	}
}
