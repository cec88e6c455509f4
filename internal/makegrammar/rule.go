package makegrammar

import (
	"strings"

	makeerrors "github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/grammar"
)

// Token vocabulary for the rule grammar. These live in their own numeric
// space from TokenParagraph; each grammar component only ever compares
// against its own constants.
const (
	TokenIdent      grammar.TokenType = 200
	TokenColon      grammar.TokenType = 201
	TokenPipe       grammar.TokenType = 202
	TokenRecipeLine grammar.TokenType = 203
)

func isIdentRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ':', '|', '#':
		return false
	default:
		return true
	}
}

// RuleLexer re-lexes a reconstituted paragraph's text into target/colon/
// pipe/prerequisite/recipe tokens for `target: prereq | order-only`
// headers followed by tab-introduced recipe lines. A second or third
// consecutive ':' (double-colon rules) is folded into a single TokenColon;
// makefwd forwards rules by name and does not distinguish rule flavors.
// A '#' outside a recipe line starts a comment that runs to end of line
// and is discarded — real `make -np` output interleaves these between
// variable-origin annotations and the rule header.
type RuleLexer struct {
	eofReached bool
}

// NewRuleLexer returns a fresh RuleLexer.
func NewRuleLexer() *RuleLexer { return &RuleLexer{} }

// NextToken implements grammar.RuleLexer.
func (l *RuleLexer) NextToken(cs grammar.CharStream) (grammar.Token, error) {
	if l.eofReached {
		return grammar.Token{Type: grammar.TokenEOF}, nil
	}

	for {
		r, err := cs.LA(1)
		if err != nil {
			l.eofReached = true
			return grammar.Token{Type: grammar.TokenEOF}, nil
		}

		switch {
		case r == ' ':
			if err := cs.Consume(); err != nil {
				return grammar.Token{}, err
			}
		case r == '#':
			if err := l.skipComment(cs); err != nil {
				return grammar.Token{}, err
			}
		case r == ':':
			start := cs.Index()
			if err := cs.Consume(); err != nil {
				return grammar.Token{}, err
			}
			for {
				next, nerr := cs.LA(1)
				if nerr != nil || next != ':' {
					break
				}
				if err := cs.Consume(); err != nil {
					return grammar.Token{}, err
				}
			}
			return grammar.Token{Type: TokenColon, Text: ":", CharStart: start, CharStop: cs.Index() - 1}, nil
		case r == '|':
			start := cs.Index()
			if err := cs.Consume(); err != nil {
				return grammar.Token{}, err
			}
			return grammar.Token{Type: TokenPipe, Text: "|", CharStart: start, CharStop: start}, nil
		case r == '\n':
			if err := cs.Consume(); err != nil {
				return grammar.Token{}, err
			}
		case r == '\t':
			tok, err := l.lexRecipeLine(cs)
			if err != nil {
				return grammar.Token{}, err
			}
			return tok, nil
		default:
			start := cs.Index()
			var sb strings.Builder
			for {
				rr, rerr := cs.LA(1)
				if rerr != nil {
					l.eofReached = true
					break
				}
				if !isIdentRune(rr) {
					break
				}
				sb.WriteRune(rr)
				if err := cs.Consume(); err != nil {
					return grammar.Token{}, err
				}
			}
			return grammar.Token{
				Type:      TokenIdent,
				Text:      sb.String(),
				CharStart: start,
				CharStop:  cs.Index() - 1,
			}, nil
		}
	}
}

// skipComment consumes a '#' and everything up to (not including) the next
// newline or end of input.
func (l *RuleLexer) skipComment(cs grammar.CharStream) error {
	for {
		r, err := cs.LA(1)
		if err != nil {
			l.eofReached = true
			return nil
		}
		if r == '\n' {
			return nil
		}
		if err := cs.Consume(); err != nil {
			return err
		}
	}
}

// lexRecipeLine consumes a tab-introduced recipe line, returning its text
// with a trailing tab and newline appended so the target package's
// independent trim law has something to strip.
func (l *RuleLexer) lexRecipeLine(cs grammar.CharStream) (grammar.Token, error) {
	start := cs.Index()
	if err := cs.Consume(); err != nil { // leading '\t'
		return grammar.Token{}, err
	}
	var sb strings.Builder
	for {
		rr, rerr := cs.LA(1)
		if rerr != nil {
			l.eofReached = true
			break
		}
		if rr == '\n' {
			if err := cs.Consume(); err != nil {
				return grammar.Token{}, err
			}
			break
		}
		sb.WriteRune(rr)
		if err := cs.Consume(); err != nil {
			return grammar.Token{}, err
		}
	}
	return grammar.Token{
		Type:      TokenRecipeLine,
		Text:      sb.String() + "\t\n",
		CharStart: start,
		CharStop:  cs.Index() - 1,
	}, nil
}

// ruleContext is the grammar.RuleContext RuleParser builds.
type ruleContext struct {
	targets       []string
	prerequisites []string
	orderOnly     []string
	recipe        []string
}

func (c *ruleContext) IsTarget() bool                   { return true }
func (c *ruleContext) TargetNames() []string            { return c.targets }
func (c *ruleContext) Prerequisites() []string          { return c.prerequisites }
func (c *ruleContext) OrderOnlyPrerequisites() []string { return c.orderOnly }
func (c *ruleContext) Recipe() []string                 { return c.recipe }

// RuleParser consumes the token stream RuleLexer produces and builds one
// RuleContext per paragraph: a fan-out of target names, their normal and
// order-only prerequisites, and the raw recipe lines that follow.
type RuleParser struct{}

// NewRuleParser returns a fresh RuleParser.
func NewRuleParser() *RuleParser { return &RuleParser{} }

// ParseRule implements grammar.RuleParser.
func (p *RuleParser) ParseRule(ts grammar.TokenSource) (grammar.RuleContext, error) {
	tok, err := ts.LT(1)
	if err != nil {
		return nil, err
	}
	if tok.IsEOF() {
		return nil, makeerrors.NewParseCancelledError("end of input")
	}

	ctx := &ruleContext{}

	for tok.Type == TokenIdent {
		ctx.targets = append(ctx.targets, tok.Text)
		if err := ts.Consume(); err != nil {
			return nil, err
		}
		tok, err = ts.LT(1)
		if err != nil {
			return nil, err
		}
	}
	if tok.Type == TokenColon {
		if err := ts.Consume(); err != nil {
			return nil, err
		}
		tok, err = ts.LT(1)
		if err != nil {
			return nil, err
		}
	}
	for tok.Type == TokenIdent {
		ctx.prerequisites = append(ctx.prerequisites, tok.Text)
		if err := ts.Consume(); err != nil {
			return nil, err
		}
		tok, err = ts.LT(1)
		if err != nil {
			return nil, err
		}
	}
	if tok.Type == TokenPipe {
		if err := ts.Consume(); err != nil {
			return nil, err
		}
		tok, err = ts.LT(1)
		if err != nil {
			return nil, err
		}
		for tok.Type == TokenIdent {
			ctx.orderOnly = append(ctx.orderOnly, tok.Text)
			if err := ts.Consume(); err != nil {
				return nil, err
			}
			tok, err = ts.LT(1)
			if err != nil {
				return nil, err
			}
		}
	}
	for tok.Type == TokenRecipeLine {
		ctx.recipe = append(ctx.recipe, tok.Text)
		if err := ts.Consume(); err != nil {
			return nil, err
		}
		tok, err = ts.LT(1)
		if err != nil {
			return nil, err
		}
	}

	return ctx, nil
}
