package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/config"
	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/render"
)

func TestUsageMessage(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"too few", []string{"1", "2"}, "Wrong number of arguments. There should be three.\n"},
		{"too many", []string{"1", "2", "3", "4", "5"}, "Wrong number of arguments. There should be three.\n"},
		{"rows out of range", []string{"0", "5", "5"}, "Numerical arguments are out of bounds.\nAcceptable: [1, 50] [1, 50] [0, 1000]\n"},
		{"turns out of range", []string{"5", "5", "1001"}, "Numerical arguments are out of bounds.\nAcceptable: [1, 50] [1, 50] [0, 1000]\n"},
		{"non-numeric", []string{"x", "5", "5"}, "Numerical arguments are out of bounds.\n"},
		{"bad seed", []string{"5", "5", "5", "x"}, "Invalid seed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.ParseArgs(tc.args)
			if err == nil {
				t.Fatalf("ParseArgs(%v) succeeded, expected error", tc.args)
			}
			if got := usageMessage(err); !strings.HasPrefix(got, tc.expected) {
				t.Errorf("usageMessage = %q, expected prefix %q", got, tc.expected)
			}
		})
	}
}

func TestPlainFrameUsesConfig(t *testing.T) {
	rs := config.RunSettings{Rows: 2, Cols: 3, Turns: 0, Seed: 1, HasSeed: true}
	state, err := rs.NewState(config.NewRand(rs.Seed))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	sn := state.Snapshot()

	display := config.DefaultConfig()
	if got, want := plainFrame(display)(sn), render.Render(sn, render.ClassicGlyphs()); got != want {
		t.Errorf("default frame = %q, expected %q", got, want)
	}

	display.Border = "box"
	got := plainFrame(display)(sn)
	if !strings.HasPrefix(got, string(core.BoxBorder.TopLeft)) {
		t.Errorf("box frame = %q, expected box corner", got)
	}
	if strings.Count(got, "\n") != sn.Height+2 {
		t.Errorf("frame has %d lines, expected %d", strings.Count(got, "\n"), sn.Height+2)
	}
}

func TestVersionString(t *testing.T) {
	if !strings.HasPrefix(versionString(), "langton ") {
		t.Errorf("versionString() = %q", versionString())
	}
}

func TestWriteRunPrintsTurnsPlusOneFrames(t *testing.T) {
	rs := config.RunSettings{Rows: 3, Cols: 3, Turns: 2, Seed: 11, HasSeed: true}
	newState := func() *ant.State {
		s, err := rs.NewState(config.NewRand(rs.Seed))
		if err != nil {
			t.Fatalf("NewState failed: %v", err)
		}
		return s
	}

	var out strings.Builder
	sum, err := writeRun(&out, newState(), rs.Turns, plainFrame(config.DefaultConfig()))
	if err != nil {
		t.Fatalf("writeRun failed: %v", err)
	}

	// The same seed gives the same start, so the expected output can be built
	// frame by frame.
	var expected strings.Builder
	ref := newState()
	for i := 0; i <= rs.Turns; i++ {
		if i > 0 {
			ref.Step()
		}
		expected.WriteString(render.Render(ref.Snapshot(), render.ClassicGlyphs()))
	}
	if out.String() != expected.String() {
		t.Errorf("output = %q, expected %q", out.String(), expected.String())
	}

	// Each 3x3 frame is five lines with a dashed border top and bottom.
	if got := strings.Count(out.String(), "-----\n"); got != 2*(rs.Turns+1) {
		t.Errorf("found %d border lines, expected %d", got, 2*(rs.Turns+1))
	}
	if got := strings.Count(out.String(), "\n"); got != 5*(rs.Turns+1) {
		t.Errorf("output has %d lines, expected %d", got, 5*(rs.Turns+1))
	}
	if sum.Ticks != rs.Turns || sum.Area != 9 {
		t.Errorf("summary = %+v, expected %d ticks over 9 cells", sum, rs.Turns)
	}
}

func TestWriteRunZeroTurns(t *testing.T) {
	s, err := ant.New(4, 2, 0, 0)
	if err != nil {
		t.Fatalf("ant.New failed: %v", err)
	}
	var out strings.Builder
	if _, err := writeRun(&out, s, 0, plainFrame(config.DefaultConfig())); err != nil {
		t.Fatalf("writeRun failed: %v", err)
	}
	if expected := "------\n|*   |\n|    |\n------\n"; out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
}

func TestNegativeArgumentReportsBounds(t *testing.T) {
	rootCmd.SetArgs([]string{"5", "5", "-1"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Execute() succeeded, expected an error")
	}
	const expected = "Numerical arguments are out of bounds.\nAcceptable: [1, 50] [1, 50] [0, 1000]\n"
	if got := usageMessage(err); got != expected {
		t.Errorf("usageMessage = %q, expected %q", got, expected)
	}
}

func TestFlagErrorPassesOtherErrors(t *testing.T) {
	cmd := &cobra.Command{}
	orig := errors.New("unknown flag: --colour")
	if got := flagError(cmd, orig); got != orig {
		t.Errorf("flagError = %v, expected the original error", got)
	}
	if cmd.SilenceUsage {
		t.Error("usage should still be shown for unknown flags")
	}
}
