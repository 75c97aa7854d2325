// langton runs Langton's Ant on a small wrapping grid in the terminal.
//
// Usage:
//
//	langton <rows> <columns> <turns> [seed]        - Print every frame of a run
//	langton watch <rows> <columns> <turns> [seed]  - Animate a run
//	langton serve <rows> <columns> <turns> [seed]  - Serve the animation over SSH
//	langton version                                - Print the version
//
// Global flags:
//
//	--config <path>  - Display config YAML (glyphs, colors, fps, server)
//	--color          - Style frames with lipgloss when stdout is a terminal
//	--verbose        - Debug logging on stderr
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/config"
	"github.com/vovakirdan/langton/internal/render"
)

var (
	// Global flags
	flagConfig  string
	flagColor   bool
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "langton"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, usageMessage(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "langton <rows> <columns> <turns> [seed]",
	Short: "Langton's Ant in your terminal",
	Long: `Langton's Ant walks a wrapping grid of white and black cells. On a white
cell it turns clockwise, on a black cell counterclockwise. It flips the
cell it leaves and moves one step forward.

The ant starts facing north at a random cell. Pass a seed to make the
start position reproducible.

Acceptable ranges: rows [1, 50], columns [1, 50], turns [0, 1000].

Examples:
  langton 10 20 100
  langton 10 20 100 42
  langton watch 30 60 1000
  langton serve --ssh :2222 20 40 1000`,
	Args:             cobra.ArbitraryArgs,
	PersistentPreRun: setupLogger,
	Run:              runClassic,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to display config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagColor, "color", false, "Style frames when stdout is a terminal")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// main prints errors itself so range errors keep their classic wording.
	rootCmd.SilenceErrors = true
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger(_ *cobra.Command, _ []string) {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}

// runClassic prints turns+1 frames: the starting board, then one per step.
func runClassic(_ *cobra.Command, args []string) {
	rs := mustParseSettings(args)
	display := mustLoadConfig()
	state, seed := mustNewState(rs)

	frame := plainFrame(display)
	if flagColor && term.IsTerminal(int(os.Stdout.Fd())) {
		frame = styledFrame(display)
	}

	sum, err := writeRun(os.Stdout, state, rs.Turns, frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("run finished",
		"seed", seed,
		"ticks", sum.Ticks,
		"visited", sum.Visited,
		"black", sum.Black,
		"area", sum.Area,
	)
}

// writeRun renders every snapshot of the run to w and returns its summary.
func writeRun(w io.Writer, state *ant.State, turns int, frame func(ant.Snapshot) string) (ant.Summary, error) {
	out := bufio.NewWriter(w)
	stats := ant.NewStats()
	for sn := range state.Run(turns) {
		stats.Observe(sn)
		if _, err := out.WriteString(frame(sn)); err != nil {
			return stats.Summary(), err
		}
	}
	return stats.Summary(), out.Flush()
}

func plainFrame(display config.Config) func(ant.Snapshot) string {
	g, b := display.RenderGlyphs(), display.FrameBorder()
	return func(sn ant.Snapshot) string {
		return render.Frame(sn, g, b).String() + "\n"
	}
}

func styledFrame(display config.Config) func(ant.Snapshot) string {
	r := newStyled(display)
	return func(sn ant.Snapshot) string {
		return r.Render(sn) + "\n"
	}
}

func newStyled(display config.Config) *render.Styled {
	return render.NewStyled(display.RenderGlyphs(), render.NewTheme(display.Palette()), display.FrameBorder())
}
