package extract

import (
	"mkg/internal/lexicon"
)

// Classifier labels a headline with the causal-language rule it
// matches, if any. Rules are tried highest priority first; a rule
// that requires a movement indicator is skipped when the headline
// carries none.
type Classifier struct {
	lex *lexicon.Lexicon
}

// NewClassifier returns a classifier over a compiled lexicon.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// FallbackPattern labels headlines no causal rule matched. The label
// is provenance only; under the strict inclusion policy a fallback
// classification fails the gate.
const FallbackPattern = "general_context"

// Classify returns the name of the highest-priority matching causal
// rule and true, or the fallback label and false when no rule applies
// to the lowercased headline.
func (c *Classifier) Classify(lower string) (string, bool) {
	hasMovement := c.lex.HasMovement(lower)
	for _, rule := range c.lex.Rules() {
		if rule.RequiresMovement && !hasMovement {
			continue
		}
		if rule.Match(lower) {
			return rule.Name, true
		}
	}
	return FallbackPattern, false
}
