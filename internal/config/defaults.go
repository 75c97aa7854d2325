package config

import (
	_ "embed"
)

//go:embed defaults/langton.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/langton.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Glyphs: GlyphConfig{
			White: " ",
			Black: "#",
			Ant:   "*",
		},
		Colors: ColorConfig{
			Black:  "7",
			Ant:    "208",
			Border: "245",
		},
		Border: "ascii",
		Watch: WatchConfig{
			FPS: 10,
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Source: "builtin",
	}
}
