package core

// RuntimeConfig describes the terminal a run is displayed on.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Frames shown per second by animated viewers
	Seed    int64 // RNG seed for the start position
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     10,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Fits reports whether a w×h block fits on the screen.
func (c RuntimeConfig) Fits(w, h int) bool {
	return w <= c.ScreenW && h <= c.ScreenH
}
