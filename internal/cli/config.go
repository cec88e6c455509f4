package cli

import "github.com/sdlcforge/makefwd/internal/config"

// Config is the CLI's configuration shape. It is an alias for
// config.Config so the rest of this package, and code generated from it
// via flag binding, can keep referring to cli.Config while service
// packages that only need the data (internal/ordering, internal/app)
// depend on internal/config instead of internal/cli.
type Config = config.Config

// ColorMode represents the color output mode for the CLI.
type ColorMode = config.ColorMode

const (
	// ColorAuto enables color output when connected to a terminal.
	ColorAuto = config.ColorAuto

	// ColorAlways forces color output regardless of terminal detection.
	ColorAlways = config.ColorAlways

	// ColorNever disables color output.
	ColorNever = config.ColorNever
)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return config.New()
}
