package main

import (
	"github.com/milk9111/sketchjump/levelgen"
	"github.com/milk9111/sketchjump/levelview"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse generated levels in the terminal",
	Long: `Show generated layouts as a character grid.

Keys:
  n/p   - Next / previous level
  r/R   - Next / previous seed
  s     - Cycle a forced strategy
  q     - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			return err
		}
		m := levelview.NewModel(levelgen.New(tuning), levelgen.JumpReach(tuning.Player), flagSeed, flagLevel)
		return levelview.Run(m)
	},
}
