package target

import (
	"strings"

	"github.com/sdlcforge/makefwd/internal/grammar"
)

// synthesize builds the target at index within ctx's target-name fan-out,
// attaching mf as the owning makefile (component design §4.4, "Target
// synthesis"). Identifier text is copied out eagerly here so the returned
// Target outlives the parser and its backing token stream.
func synthesize(ctx grammar.RuleContext, index int, mf Makefile) Target {
	return Target{
		Path:                   ctx.TargetNames()[index],
		Prerequisites:          copyStrings(ctx.Prerequisites()),
		OrderOnlyPrerequisites: copyStrings(ctx.OrderOnlyPrerequisites()),
		RecipeLines:            trimRecipeLines(ctx.Recipe()),
		Makefile:               mf,
	}
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func trimRecipeLines(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = trimRecipeLine(l)
	}
	return out
}

// trimRecipeLine implements the recipe trim law (component design §4.4,
// point 4): strip at most one trailing tab, then — independently — at most
// one trailing newline. Each drop is checked and applied on its own; no
// other character is touched.
func trimRecipeLine(s string) string {
	if strings.HasSuffix(s, "\t") {
		s = s[:len(s)-1]
	}
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
	}
	return s
}
