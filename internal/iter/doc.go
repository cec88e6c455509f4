// Package iter implements the lazy pull-iterator algebra the parse pipeline
// is built from (spec component design, "Lazy iterator algebra").
//
// Every stage of the pipeline is an Iterator[T]: a forward-only cursor with
// three observable conditions (at-start, has-current, at-end) and a single
// Advance operation. Two combinators are provided on top of that contract:
// ConditionFilter, a history-dependent acceptor-driven filter, and
// Concatenator, which flattens an iterator of iterators while skipping
// empty inner iterators.
//
// # State machine
//
// Every Iterator conforms to S (start) -> I (intermediate) -> E (end), with
// allowed transitions S->I, S->E, I->I, I->E, E->E. HasCurrent is true only
// in I; AtStart only in S; AtEnd only in E. Reading Current is valid only
// in I.
package iter
