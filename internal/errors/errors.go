package errors

import (
	"fmt"
	"strings"
)

// MalformedLineError is returned when a Line is constructed from text
// containing a line terminator.
type MalformedLineError struct {
	// Text is the offending input.
	Text string
}

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line: input contains a line terminator: %q", e.Text)
}

// NewMalformedLineError creates a new MalformedLineError.
func NewMalformedLineError(text string) *MalformedLineError {
	return &MalformedLineError{Text: text}
}

// ReadPastEndError is returned when consume or get_text is called past the
// end of a markable stream.
type ReadPastEndError struct {
	// Index is the position that was requested.
	Index int
}

// Error implements the error interface.
func (e *ReadPastEndError) Error() string {
	return fmt.Sprintf("read past end of stream at index %d", e.Index)
}

// NewReadPastEndError creates a new ReadPastEndError.
func NewReadPastEndError(index int) *ReadPastEndError {
	return &ReadPastEndError{Index: index}
}

// ReleasedPositionError is returned when seek or get_text targets a position
// already garbage-collected behind active marks.
type ReleasedPositionError struct {
	// Index is the position that was requested.
	Index int

	// LowestBuffered is the lowest global index still retained.
	LowestBuffered int
}

// Error implements the error interface.
func (e *ReleasedPositionError) Error() string {
	return fmt.Sprintf("position %d already released by garbage collection (lowest retained index is %d)", e.Index, e.LowestBuffered)
}

// NewReleasedPositionError creates a new ReleasedPositionError.
func NewReleasedPositionError(index, lowestBuffered int) *ReleasedPositionError {
	return &ReleasedPositionError{Index: index, LowestBuffered: lowestBuffered}
}

// ParseCancelledError is the grammar's end-of-input signal. It is strictly
// local to the target emitter and never surfaces to the core's caller.
type ParseCancelledError struct {
	// Reason optionally describes why the parse was cancelled.
	Reason string
}

// Error implements the error interface.
func (e *ParseCancelledError) Error() string {
	if e.Reason == "" {
		return "parse cancelled: end of input"
	}
	return fmt.Sprintf("parse cancelled: %s", e.Reason)
}

// NewParseCancelledError creates a new ParseCancelledError.
func NewParseCancelledError(reason string) *ParseCancelledError {
	return &ParseCancelledError{Reason: reason}
}

// ParsePipelineError wraps any lower-level failure surfaced by a grammar or
// stream adapter as it crosses the pipeline boundary.
type ParsePipelineError struct {
	// Stage names the pipeline stage where the failure occurred.
	Stage string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParsePipelineError) Error() string {
	return fmt.Sprintf("parse pipeline failed at %s: %v", e.Stage, e.Err)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying error.
func (e *ParsePipelineError) Unwrap() error {
	return e.Err
}

// NewParsePipelineError creates a new ParsePipelineError.
func NewParsePipelineError(stage string, err error) *ParsePipelineError {
	return &ParsePipelineError{Stage: stage, Err: err}
}

// LocatorIOError is returned for filesystem or permission failures during
// makefile discovery. The locator's scoped context still cleans up.
type LocatorIOError struct {
	// Path is the directory being scanned when the failure occurred.
	Path string

	// Err is the underlying OS error.
	Err error
}

// Error implements the error interface.
func (e *LocatorIOError) Error() string {
	return fmt.Sprintf("locator I/O error at %s: %v", e.Path, e.Err)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying error.
func (e *LocatorIOError) Unwrap() error {
	return e.Err
}

// NewLocatorIOError creates a new LocatorIOError.
func NewLocatorIOError(path string, err error) *LocatorIOError {
	return &LocatorIOError{Path: path, Err: err}
}

// MakefileNotFoundError is returned when no makefile can be located at the
// requested root.
type MakefileNotFoundError struct {
	// Path is the directory that was searched.
	Path string
}

// Error implements the error interface.
func (e *MakefileNotFoundError) Error() string {
	return fmt.Sprintf("no makefile found under: %s\nUse --makefile-priority to configure candidate filenames", e.Path)
}

// NewMakefileNotFoundError creates a new MakefileNotFoundError.
func NewMakefileNotFoundError(path string) *MakefileNotFoundError {
	return &MakefileNotFoundError{Path: path}
}

// MakeExecutionError is returned when invoking the external make binary fails.
type MakeExecutionError struct {
	// Command is the make command that was executed.
	Command string

	// Stderr contains the error output from make.
	Stderr string
}

// Error implements the error interface.
func (e *MakeExecutionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("make command failed: %s\n%s", e.Command, e.Stderr)
	}
	return fmt.Sprintf("make command failed: %s", e.Command)
}

// NewMakeExecutionError creates a new MakeExecutionError.
func NewMakeExecutionError(command, stderr string) *MakeExecutionError {
	return &MakeExecutionError{Command: command, Stderr: stderr}
}

// TargetCollisionError describes two discovered directories defining the
// same target name, which would make forwarding ambiguous.
type TargetCollisionError struct {
	// Target is the colliding target name.
	Target string

	// Directories lists the directories that define it.
	Directories []string
}

// Error implements the error interface.
func (e *TargetCollisionError) Error() string {
	return fmt.Sprintf("target %q is defined in multiple directories: %s\nUse --fix to disambiguate", e.Target, strings.Join(e.Directories, ", "))
}

// NewTargetCollisionError creates a new TargetCollisionError.
func NewTargetCollisionError(target string, directories []string) *TargetCollisionError {
	return &TargetCollisionError{Target: target, Directories: directories}
}

// UnknownDirOrderError is returned when --dir-order names a directory that
// was never discovered.
type UnknownDirOrderError struct {
	// Name is the unrecognized directory name.
	Name string

	// Available lists the directory names that were actually discovered.
	Available []string
}

// Error implements the error interface.
func (e *UnknownDirOrderError) Error() string {
	return fmt.Sprintf("--dir-order names unknown directory %q; discovered directories are: %s", e.Name, strings.Join(e.Available, ", "))
}

// NewUnknownDirOrderError creates a new UnknownDirOrderError.
func NewUnknownDirOrderError(name string, available []string) *UnknownDirOrderError {
	return &UnknownDirOrderError{Name: name, Available: available}
}
