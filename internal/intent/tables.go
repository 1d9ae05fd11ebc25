package intent

import "github.com/brightbeginnings/daycare-voice-service/internal/domain"

// DefaultRules is the full keyword table used by the messaging surface and
// the canned FAQ answers.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: domain.IntentFees, Keywords: []string{"fee", "price", "cost"}},
		// "heure"/"ouvert" catch the common French phrasing of an hours
		// question, which would otherwise land on the AI fallback.
		{Intent: domain.IntentHours, Keywords: []string{"hour", "time", "open", "close", "heure", "ouvert"}},
		{Intent: domain.IntentMeals, Keywords: []string{"meal", "food", "lunch", "snack"}},
		{Intent: domain.IntentPrograms, Keywords: []string{"program", "curriculum", "age group"}},
		{Intent: domain.IntentTour, Keywords: []string{"tour", "visit", "see"}},
		{Intent: domain.IntentUrgent, Keywords: []string{"emergency", "urgent", "now"}},
		{Intent: domain.IntentOpenings, Keywords: []string{"enroll", "admission", "seat"}},
	}
}

// CallFlowRules is the narrowed table used inside the voice flow. It keeps a
// smaller token set for tour/fees/hours and adds the manager handoff group
// ahead of the general default.
func CallFlowRules() []Rule {
	return []Rule{
		{Intent: domain.IntentTour, Keywords: []string{"tour", "visit"}},
		{Intent: domain.IntentFees, Keywords: []string{"fee", "price"}},
		{Intent: domain.IntentHours, Keywords: []string{"hour", "time"}},
		{Intent: domain.IntentUrgent, Keywords: []string{"emergency", "urgent", "now"}},
		{Intent: domain.IntentManager, Keywords: []string{"manager", "human", "person", "representative"}},
	}
}
