// Package errors defines custom error types for makefwd.
//
// All error types implement the standard error interface. The core parse
// pipeline's error kinds (spec section "Error Handling Design") are modeled
// here as typed errors so callers can errors.As them instead of matching on
// message text:
//
//   - MalformedLineError: a Line was constructed from text containing a
//     line terminator
//   - ReadPastEndError: consume or get_text was called past the end of a
//     markable stream
//   - ReleasedPositionError: seek or get_text targeted a position already
//     garbage-collected behind active marks
//   - ParseCancelledError: the grammar's end-of-input signal; caught locally
//     by the target emitter and never returned to the pipeline's caller
//   - ParsePipelineError: wraps any lower-level failure from a grammar or
//     stream adapter as it crosses the pipeline boundary
//   - LocatorIOError: a filesystem or permission failure during makefile
//     discovery
//
// The remaining types describe failures in the ambient wrapper built around
// the core:
//
//   - MakefileNotFoundError: no makefile could be located under the given root
//   - MakeExecutionError: invoking the external make binary failed
//   - TargetCollisionError: two discovered directories define the same
//     target name, making forwarding ambiguous
//
// All error types have constructor functions (NewXxxError) that create
// properly initialized error instances.
package errors
