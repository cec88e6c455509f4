package format

import (
	"fmt"
	"io"

	"github.com/sdlcforge/makefwd/internal/model"
)

// Renderer generates formatted output from a ForwardingModel.
type Renderer interface {
	// Render writes the complete forwarding report to w.
	Render(fm *model.ForwardingModel, w io.Writer) error
}

// FormatMetadata provides information about a format's properties.
type FormatMetadata interface {
	// ContentType returns the MIME type for this format.
	ContentType() string

	// DefaultExtension returns the default file extension for this format.
	DefaultExtension() string
}

// Formatter is the interface every output format implementation satisfies.
type Formatter interface {
	Renderer
	FormatMetadata
}

// FormatterConfig holds configuration options common to all formatters.
type FormatterConfig struct {
	// UseColor enables ANSI-colored output (text format only).
	UseColor bool

	// ColorScheme defines the colors used when UseColor is true. When nil,
	// a default scheme is created.
	ColorScheme *ColorScheme
}

// normalizeConfig returns a non-nil config with defaults applied.
func normalizeConfig(config *FormatterConfig) *FormatterConfig {
	if config == nil {
		return &FormatterConfig{UseColor: false}
	}
	return config
}

// NewFormatter creates a formatter for the given format name. Supported
// names: "text"/"txt", "json", "markdown"/"md".
func NewFormatter(formatType string, config *FormatterConfig) (Formatter, error) {
	switch formatType {
	case "text", "txt", "":
		return NewTextFormatter(config), nil
	case "json":
		return NewJSONFormatter(config), nil
	case "markdown", "md":
		return NewMarkdownFormatter(config), nil
	default:
		return nil, fmt.Errorf("unknown format type: %s (supported: text, json, markdown)", formatType)
	}
}
