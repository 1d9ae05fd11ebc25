package intent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

func TestClassifyDefaultRules(t *testing.T) {
	c := NewClassifier(DefaultRules())

	cases := []struct {
		text string
		want domain.Intent
	}{
		{"How much does it cost per month?", domain.IntentFees},
		{"What time do you open?", domain.IntentHours},
		{"Do you serve lunch?", domain.IntentMeals},
		{"Tell me about your curriculum", domain.IntentPrograms},
		{"Can I come visit this week?", domain.IntentTour},
		{"This is an emergency", domain.IntentUrgent},
		{"Any seat left for September?", domain.IntentOpenings},
		{"Hello there", domain.IntentGeneral},
		{"", domain.IntentGeneral},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, c.Classify(tc.text), "text: %q", tc.text)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := NewClassifier(DefaultRules())
	require.Equal(t, domain.IntentFees, c.Classify("WHAT IS THE PRICE?"))
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// "cost" and "open" co-occur; the fees rule sits above the hours rule.
	c := NewClassifier(DefaultRules())
	require.Equal(t, domain.IntentFees, c.Classify("what does it cost when you open"))
}

func TestClassifyCallFlowRules(t *testing.T) {
	c := NewClassifier(CallFlowRules())

	cases := []struct {
		text string
		want domain.Intent
	}{
		{"I'd like to book a tour", domain.IntentTour},
		{"what are your fees", domain.IntentFees},
		{"what are your hours", domain.IntentHours},
		{"This is an emergency, I need the manager now", domain.IntentUrgent},
		{"let me talk to a person", domain.IntentManager},
		{"do you serve lunch", domain.IntentGeneral},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, c.Classify(tc.text), "text: %q", tc.text)
	}
}
