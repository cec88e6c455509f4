package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdlcforge/makefwd/internal/model"
)

// MarkdownFormatter generates Markdown output for documentation sites.
type MarkdownFormatter struct {
	config *FormatterConfig
}

// NewMarkdownFormatter creates a new MarkdownFormatter with the given
// configuration.
func NewMarkdownFormatter(config *FormatterConfig) *MarkdownFormatter {
	return &MarkdownFormatter{config: normalizeConfig(config)}
}

// escapeMarkdown escapes special Markdown characters in structural
// elements to prevent accidental formatting.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		`*`, `\*`,
		`_`, `\_`,
		"`", "\\`",
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(s)
}

// Render generates a Markdown document: a heading and target list per
// directory, then a Collisions table if any target names collide.
func (f *MarkdownFormatter) Render(fm *model.ForwardingModel, w io.Writer) error {
	if fm == nil {
		return errNilModel("markdown")
	}

	var buf strings.Builder
	buf.WriteString("# Forwarding targets\n\n")

	for _, dir := range fm.Directories {
		fmt.Fprintf(&buf, "## %s\n\n", escapeMarkdown(dir.Makefile.ExecPath))
		for _, tgt := range dir.Targets {
			fmt.Fprintf(&buf, "- `%s`\n", tgt.Path)
		}
		buf.WriteString("\n")
	}

	if len(fm.Collisions) > 0 {
		buf.WriteString("## Collisions\n\n")
		buf.WriteString("| Target | Directories |\n")
		buf.WriteString("| --- | --- |\n")
		for _, c := range fm.Collisions {
			dirs := make([]string, len(c.Directories))
			for i, mf := range c.Directories {
				dirs[i] = escapeMarkdown(mf.ExecPath)
			}
			fmt.Fprintf(&buf, "| `%s` | %s |\n", c.Name, strings.Join(dirs, ", "))
		}
		buf.WriteString("\n")
	}

	_, err := w.Write([]byte(buf.String()))
	return err
}

// ContentType returns the MIME type for Markdown format.
func (f *MarkdownFormatter) ContentType() string {
	return "text/markdown"
}

// DefaultExtension returns the default file extension for Markdown format.
func (f *MarkdownFormatter) DefaultExtension() string {
	return ".md"
}
