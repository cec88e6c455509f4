// Package grammar defines the boundary between this module's core pipeline
// and the generated parsing layer that actually understands `make -p`
// output and recipe syntax. That generated layer is treated as an external
// collaborator: this package declares the Go interfaces and token
// vocabulary the core programs against, without importing a concrete ANTLR
// runtime or committing to one grammar implementation. Tests exercise the
// core against the hand-written fakes in package grammartest.
package grammar
