package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the duel configuration",
	Long: `Print the effective duel configuration as YAML.

Without flags this resolves the configuration the same way 'play' does:
a --config path, then ~/.lightcycle/configs/cycles.yaml, then the
built-in defaults. With --defaults it prints the annotated default file,
ready to copy and customize.

Examples:
  lightcycle config
  lightcycle config --defaults > ~/.lightcycle/configs/cycles.yaml
  lightcycle config --config ./my-duel.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the annotated default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadCycles(flagConfig)
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Error("could not render config", "error", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
