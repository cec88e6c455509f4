// Package format renders a ForwardingModel in the output formats makefwd
// supports: plain/colored text, JSON, and Markdown. The shape is adapted
// from the teacher's format package: a Formatter interface combining
// rendering with FormatMetadata, a FormatterConfig carrying color options,
// and a NewFormatter factory dispatching on a format name.
//
// The teacher also shipped Make and HTML formatters (for generating
// @printf recipes and browser pages) and a LineRenderer interface for
// embedding rendered lines into a Makefile. None of those have a home
// here: makefwd's generated output is Makefile rules written directly by
// internal/generator, not a rendered help page, so there is nothing for a
// Make or HTML formatter, or a line-oriented embedding interface, to
// produce.
//
// # Color Support
//
// Text output supports ANSI color, controlled via FormatterConfig. The
// default scheme: bold cyan for directory names, bold green for target
// names, bold red for collisions.
package format
