package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/langton/internal/config"
	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/platform/tui"
)

var flagFPS int

var watchCmd = &cobra.Command{
	Use:   "watch <rows> <columns> <turns> [seed]",
	Short: "Animate a run in the terminal",
	Long: `Animate a run one step per frame with a progress bar.

Controls:
  Q/Esc/Ctrl+C  - Quit

Examples:
  langton watch 20 40 1000
  langton watch 20 40 1000 7 --fps 30`,
	Args: cobra.ArbitraryArgs,
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
}

func runWatch(_ *cobra.Command, args []string) {
	rs := mustParseSettings(args)
	display := mustLoadConfig()
	state, seed := mustNewState(rs)

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	fps := display.Watch.FPS
	if flagFPS > 0 {
		fps = core.Clamp(flagFPS, config.MinFPS, config.MaxFPS)
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     fps,
		Seed:    seed,
	}

	if err := tui.Run(state, rs.Turns, newStyled(display), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
