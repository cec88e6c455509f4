// Package target holds the pipeline's output value type (Target), the
// Makefile descriptor attached to every emitted target, and the Emitter
// that turns a stream of grammar.RuleContext values into a stream of
// Target values (component design §4.4).
package target
