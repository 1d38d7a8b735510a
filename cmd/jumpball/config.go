package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarpenko/tui-jumpball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay config",
	Long: `Print the built-in gameplay config as YAML.

Save it to a file, tweak it, and load it back with --config:

  jumpball config > my-config.yaml
  jumpball --config ./my-config.yaml

Or place it at ~/.jumpball/configs/jumpball.yaml to load it automatically.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
