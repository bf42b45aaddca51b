// sketchjump is a 2D platformer where the player draws short-lived
// platforms to reach each generated level's goal.
//
// Usage:
//
//	sketchjump play      - Play from --level with --seed
//	sketchjump gen       - Export a generated level as JSON or YAML
//	sketchjump preview   - Browse generated levels in the terminal
//
// Global flags:
//
//	--seed <value>  - Run seed (0 = random based on time)
//	--level <n>     - Starting level
//	--debug         - Debug logging and overlay
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagSeed  uint64
	flagLevel int
	flagDebug bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sketchjump",
	Short:         "Draw platforms, reach the goal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sketchjump",
		})
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		if flagLevel < 1 {
			return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
		}
		if flagSeed == 0 {
			flagSeed = uint64(time.Now().UnixNano())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Run seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Starting level")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlay")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(previewCmd)
}
