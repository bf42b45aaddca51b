package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sketchjump/clock"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/engine"
	"github.com/milk9111/sketchjump/levels"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/spf13/cobra"
)

var (
	flagWatch   bool
	flagMonitor bool
	flagLayout  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game window.

Controls:
  A/D, Left/Right   - Move
  Space/W/Up        - Jump
  Mouse drag        - Draw a platform
  X / right click   - Clear drawn platforms
  R                 - Reset level
  C                 - Copy seed and level to the clipboard
  Esc               - Pause`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs/*.yaml when they change on disk")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Start on a level file written by gen (.json, .yaml); overrides --seed and --level")
	playCmd.Flags().BoolVar(&flagMonitor, "m", false, "use base monitor instead of primary (for multi-monitor setups)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}

	opts := []engine.Option{engine.WithLogger(logger), engine.WithLevel(flagLevel)}
	if flagLayout != "" {
		f, err := levels.Load(flagLayout)
		if err != nil {
			return err
		}
		flagSeed, flagLevel = f.Seed, f.Layout.Level
		opts = append(opts, engine.WithLayout(f.Layout))
		logger.Info("loaded layout", "file", flagLayout, "level", f.Layout.Level, "strategy", f.Layout.Strategy)
	}

	clk := clock.NewPausable(clock.NewSystem())
	session, err := engine.NewSession(tuning, flagSeed, clk.Now(), opts...)
	if err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if flagWatch {
		watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("prefab watcher disabled", "error", err)
		} else {
			defer watcher.Close()
			logger.Info("watching prefabs", "dir", "prefabs")
		}
	}

	if flagMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(int(common.WorldWidth), int(common.WorldHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("sketchjump")
	ebiten.SetTPS(common.TPS)

	game := NewGame(session, clk, watcher, flagDebug)
	logger.Info("starting", "seed", flagSeed, "level", flagLevel)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
