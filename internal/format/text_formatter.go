package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdlcforge/makefwd/internal/model"
)

// TextFormatter generates plain text output suitable for terminal display.
// The output uses ANSI color codes when color is enabled.
type TextFormatter struct {
	config *FormatterConfig
	colors *ColorScheme
}

// NewTextFormatter creates a new TextFormatter with the given configuration.
func NewTextFormatter(config *FormatterConfig) *TextFormatter {
	config = normalizeConfig(config)

	return &TextFormatter{
		config: config,
		colors: initColorScheme(config),
	}
}

// Render writes one section per directory, listing its targets, followed
// by a Collisions section if any target names collide across directories.
func (f *TextFormatter) Render(fm *model.ForwardingModel, w io.Writer) error {
	if fm == nil {
		return errNilModel("text")
	}

	var buf strings.Builder

	for _, dir := range fm.Directories {
		buf.WriteString(f.colors.DirectoryName)
		buf.WriteString(dir.Makefile.ExecPath)
		buf.WriteString(":")
		buf.WriteString(f.colors.Reset)
		buf.WriteString("\n")

		for _, tgt := range dir.Targets {
			buf.WriteString("  - ")
			buf.WriteString(f.colors.TargetName)
			buf.WriteString(tgt.Path)
			buf.WriteString(f.colors.Reset)
			buf.WriteString("\n")
		}
	}

	if len(fm.Collisions) > 0 {
		buf.WriteString("\n")
		buf.WriteString(f.colors.Collision)
		buf.WriteString("Collisions:")
		buf.WriteString(f.colors.Reset)
		buf.WriteString("\n")

		for _, c := range fm.Collisions {
			dirs := make([]string, len(c.Directories))
			for i, mf := range c.Directories {
				dirs[i] = mf.ExecPath
			}
			fmt.Fprintf(&buf, "  - %s: %s\n", c.Name, strings.Join(dirs, ", "))
		}
	}

	_, err := w.Write([]byte(buf.String()))
	return err
}

// ContentType returns the MIME type for text format.
func (f *TextFormatter) ContentType() string {
	return "text/plain"
}

// DefaultExtension returns the default file extension for text format.
func (f *TextFormatter) DefaultExtension() string {
	return ".txt"
}
