package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config, --difficulty and --mute, as YAML. Redirect it to a file to
start a custom config.

Examples:
  runner config
  runner config --difficulty hard
  runner config --defaults > ~/.runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	os.Stdout.Write(data)
}
