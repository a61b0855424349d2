package config

// OutputConfig holds settings related to board and status rendering.
type OutputConfig struct {
	// Unicode renders pieces as chess glyphs instead of letters
	Unicode bool

	// ShowCaptured lists captured pieces below the board
	ShowCaptured bool

	// Color wraps pieces and highlighted cells in ANSI escape codes
	Color bool

	// JSONFormat emits a JSON snapshot instead of the text board
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCaptured: true,
	}
}
