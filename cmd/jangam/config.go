package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jangam/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay config",
	Long: `Print the built-in gameplay configuration as YAML.

Save it, tweak the values, and pass the file back with --config:

  jangam config > my-rules.yaml
  jangam play --config my-rules.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))
}
