package ant

import "fmt"

// Grid dimension bounds enforced at construction.
const (
	MinSize = 1
	MaxSize = 50
)

// ConfigurationError reports a simulation parameter outside its accepted range.
// It is returned once, at construction time; a valid State never produces one.
type ConfigurationError struct {
	Field string // Parameter name, e.g. "width" or "start row"
	Value int
	Min   int // Inclusive lower bound
	Max   int // Inclusive upper bound
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid %s %d: must be in [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// checkRange returns a ConfigurationError when v is outside [lo, hi].
func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &ConfigurationError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
