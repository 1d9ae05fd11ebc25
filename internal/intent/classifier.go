package intent

import (
	"strings"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// Rule pairs a keyword group with the intent it resolves to. Rules are
// evaluated top-down and the first matching group wins, so order carries
// meaning.
type Rule struct {
	Intent   domain.Intent
	Keywords []string
}

// Classifier maps an utterance to one intent from the closed set using an
// ordered keyword rule table. Unmatched input resolves to the default intent.
type Classifier struct {
	rules         []Rule
	defaultIntent domain.Intent
}

// NewClassifier creates a classifier over the given ordered rule table.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{
		rules:         rules,
		defaultIntent: domain.IntentGeneral,
	}
}

// Classify lower-cases the input and returns the intent of the first rule
// whose keyword group matches. Always returns a value; never fails.
func (c *Classifier) Classify(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Intent
			}
		}
	}
	return c.defaultIntent
}
