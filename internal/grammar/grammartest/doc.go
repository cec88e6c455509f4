// Package grammartest provides hand-written fakes for the interfaces in
// package grammar, standing in for the generated grammar the real module
// would depend on. They implement just enough of the `make -p` paragraph
// and target-rule structure to exercise package tokenstream and package
// pipeline in tests, without this module committing to a concrete ANTLR
// grammar.
package grammartest
