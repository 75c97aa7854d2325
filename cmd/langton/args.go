package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/config"
)

// usageMessage maps a ParseArgs error to the text printed on stderr.
func usageMessage(err error) string {
	if errors.Is(err, config.ErrArgCount) {
		return "Wrong number of arguments. There should be three.\n" +
			"(1) number of rows, (2) number of columns, and \n" +
			"(3) number of times the ant moves.\n"
	}

	var cfgErr *ant.ConfigurationError
	if errors.As(err, &cfgErr) && cfgErr.Field == "seed" {
		return fmt.Sprintf("Invalid seed: %v\n", err)
	}
	if errors.As(err, &cfgErr) {
		return "Numerical arguments are out of bounds.\n" + config.RangesHelp() + "\n"
	}
	return fmt.Sprintf("Error: %v\n", err)
}

// flagError catches negative numbers that pflag reads as shorthand flags
// ("-1" becomes flag '1') and reports them as out-of-range arguments.
func flagError(cmd *cobra.Command, err error) error {
	rest, ok := strings.CutPrefix(err.Error(), "unknown shorthand flag: '")
	if ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		cmd.SilenceUsage = true
		return &ant.ConfigurationError{Field: "arguments", Msg: "negative value"}
	}
	return err
}

func mustParseSettings(args []string) config.RunSettings {
	rs, err := config.ParseArgs(args)
	if err != nil {
		logger.Debug("invalid arguments", "args", args, "error", err)
		fmt.Fprint(os.Stderr, usageMessage(err))
		os.Exit(1)
	}
	return rs
}

func mustLoadConfig() config.Config {
	display, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", display.Source)
	return display
}

// mustNewState seeds the start position and builds the run state.
func mustNewState(rs config.RunSettings) (*ant.State, int64) {
	seed := rs.ResolveSeed()
	state, err := rs.NewState(config.NewRand(seed))
	if err != nil {
		fmt.Fprint(os.Stderr, usageMessage(err))
		os.Exit(1)
	}
	logger.Debug("run started",
		"rows", rs.Rows,
		"columns", rs.Cols,
		"turns", rs.Turns,
		"seed", seed,
		"start", state.Ant().Pos,
	)
	return state, seed
}
