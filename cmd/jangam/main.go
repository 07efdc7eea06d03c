// jangam is a terminal asteroid-mining arcade game.
//
// Usage:
//
//	jangam play              - Play in the current terminal
//	jangam serve             - Start SSH server for remote play
//	jangam scores            - Show the top runs
//	jangam config            - Print the default gameplay config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.jangam/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jangam",
	Short: "Jangam - Mine falling asteroids in your terminal",
	Long: `Jangam is a terminal arcade game. Asteroids fall from the top of the
screen; steer your ship along the bottom, launch mining units to latch
onto asteroids and convert them into score before they hit you.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the top runs
  config   - Print the default gameplay config

Examples:
  jangam play
  jangam play --seed 42
  jangam serve --ssh :2222
  jangam scores --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jangam/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
