// Package config provides YAML display configuration, run-setting validation
// and start-position seeding for langton.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/render"
)

// Config is the full display configuration.
type Config struct {
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Colors ColorConfig  `yaml:"colors"`
	Border string       `yaml:"border"`
	Watch  WatchConfig  `yaml:"watch"`
	Server ServerConfig `yaml:"server"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// GlyphConfig holds single-character glyphs for each cell kind.
type GlyphConfig struct {
	White string `yaml:"white"`
	Black string `yaml:"black"`
	Ant   string `yaml:"ant"`
}

// ColorConfig holds lipgloss color values for styled output.
type ColorConfig struct {
	White  string `yaml:"white"`
	Black  string `yaml:"black"`
	Ant    string `yaml:"ant"`
	Border string `yaml:"border"`
}

// WatchConfig controls the animated viewer.
type WatchConfig struct {
	FPS int `yaml:"fps"`
}

// ServerConfig controls the SSH viewer server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// FPS bounds for the animated viewer.
const (
	MinFPS = 1
	MaxFPS = 120
)

// Validate checks glyphs, border style and fps.
func (c Config) Validate() error {
	glyphs := []struct {
		name, value string
	}{
		{"glyphs.white", c.Glyphs.White},
		{"glyphs.black", c.Glyphs.Black},
		{"glyphs.ant", c.Glyphs.Ant},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("config: %s must be a single character, got %q", g.name, g.value)
		}
	}

	switch c.Border {
	case "", "ascii", "box":
	default:
		return fmt.Errorf("config: border must be ascii or box, got %q", c.Border)
	}

	if c.Watch.FPS < MinFPS || c.Watch.FPS > MaxFPS {
		return fmt.Errorf("config: watch.fps must be in [%d, %d], got %d", MinFPS, MaxFPS, c.Watch.FPS)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative")
	}
	return nil
}

// RenderGlyphs converts the glyph strings to runes. Call after Validate.
func (c Config) RenderGlyphs() render.Glyphs {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return render.Glyphs{
		White: first(c.Glyphs.White),
		Black: first(c.Glyphs.Black),
		Ant:   first(c.Glyphs.Ant),
	}
}

// Palette returns the configured colors for render.NewTheme.
func (c Config) Palette() render.Palette {
	return render.Palette{
		White:  c.Colors.White,
		Black:  c.Colors.Black,
		Ant:    c.Colors.Ant,
		Border: c.Colors.Border,
	}
}

// FrameBorder returns the border runes for the configured style.
func (c Config) FrameBorder() core.Border {
	if c.Border == "box" {
		return core.BoxBorder
	}
	return core.ASCIIBorder
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}
