package target

import (
	"errors"

	makeerrors "github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/grammar"
)

const (
	emitStart = iota
	emitIntermediate
	emitEnd
)

// Emitter pulls grammar.RuleContext values from a parser reading a token
// stream and emits one Target per (context, target-index) pair, fanning a
// multi-target rule's single context out into several Targets in header
// order (component design §4.4).
//
// Emitter implements iter.Iterator[Target].
type Emitter struct {
	parser grammar.RuleParser
	ts     grammar.TokenSource
	mf     Makefile

	st  int
	ctx grammar.RuleContext
	idx int
	cur Target
}

// NewEmitter returns a fresh Emitter reading rule contexts from parser over
// ts, attaching mf to every Target it produces.
func NewEmitter(parser grammar.RuleParser, ts grammar.TokenSource, mf Makefile) *Emitter {
	return &Emitter{parser: parser, ts: ts, mf: mf, st: emitStart}
}

// Advance implements iter.Iterator.
func (e *Emitter) Advance() error {
	if e.st == emitEnd {
		return nil
	}

	if e.ctx != nil && e.idx+1 < len(e.ctx.TargetNames()) {
		e.idx++
		e.cur = synthesize(e.ctx, e.idx, e.mf)
		e.st = emitIntermediate
		return nil
	}

	for {
		ctx, err := e.parser.ParseRule(e.ts)
		if err != nil {
			var cancelled *makeerrors.ParseCancelledError
			if errors.As(err, &cancelled) {
				e.ctx = nil
				e.st = emitEnd
				return nil
			}
			return err
		}
		if ctx == nil || !ctx.IsTarget() || len(ctx.TargetNames()) == 0 {
			continue
		}
		e.ctx = ctx
		e.idx = 0
		e.cur = synthesize(ctx, 0, e.mf)
		e.st = emitIntermediate
		return nil
	}
}

// Current implements iter.Iterator.
func (e *Emitter) Current() Target { return e.cur }

// HasCurrent implements iter.Iterator.
func (e *Emitter) HasCurrent() bool { return e.st == emitIntermediate }

// AtStart implements iter.Iterator.
func (e *Emitter) AtStart() bool { return e.st == emitStart }

// AtEnd implements iter.Iterator.
func (e *Emitter) AtEnd() bool { return e.st == emitEnd }
