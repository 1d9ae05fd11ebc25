package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func testProfile() *config.BusinessProfile {
	return &config.BusinessProfile{
		Name:     "Sunny Side Daycare",
		Hours:    "Monday to Friday, 7 AM to 6 PM",
		Meals:    "Hot lunch and two snacks daily.",
		Fees:     map[string]string{"Infant": "$1,200/month", "Toddler": "$1,000/month"},
		Programs: []string{"Infants", "Toddlers"},
		TourLink: "https://sunnyside.example/tour",
	}
}

func TestComposeTemplatedIntentSkipsCompleter(t *testing.T) {
	completer := &stubCompleter{reply: "should not be used"}
	c := NewComposer(testProfile(), completer)

	reply, ok := c.Compose(SetFAQ, domain.IntentHours, domain.LanguageEnglish)
	require.True(t, ok)
	require.Contains(t, reply, "Sunny Side Daycare")
	require.Contains(t, reply, "Monday to Friday, 7 AM to 6 PM")
	require.Zero(t, completer.calls)
}

func TestComposeUnknownCombinationFallsThrough(t *testing.T) {
	c := NewComposer(testProfile(), nil)

	// The FAQ table only carries English entries; French routes to the AI.
	_, ok := c.Compose(SetFAQ, domain.IntentHours, domain.LanguageFrench)
	require.False(t, ok)

	_, ok = c.Compose(SetVoice, domain.IntentMeals, domain.LanguageEnglish)
	require.False(t, ok)
}

func TestComposeVoiceFeesInterpolatesProfile(t *testing.T) {
	c := NewComposer(testProfile(), nil)

	reply, ok := c.Compose(SetVoice, domain.IntentFees, domain.LanguageEnglish)
	require.True(t, ok)
	require.Contains(t, reply, "Infant: $1,200/month")
	require.Contains(t, reply, "Toddler: $1,000/month")
}

func TestComposeHoursFallbackWhenProfileBlank(t *testing.T) {
	profile := testProfile()
	profile.Hours = ""
	c := NewComposer(profile, nil)

	reply, ok := c.Compose(SetFAQ, domain.IntentHours, domain.LanguageEnglish)
	require.True(t, ok)
	require.Contains(t, reply, "7 AM to 6 PM")
}

func TestComposeAIUsesCompleter(t *testing.T) {
	completer := &stubCompleter{reply: "We have openings in the toddler room."}
	c := NewComposer(testProfile(), completer)

	reply := c.ComposeAI(context.Background(), "any openings?", domain.LanguageEnglish)
	require.Equal(t, "We have openings in the toddler room.", reply)
	require.Equal(t, 1, completer.calls)
}

func TestComposeAIFailureYieldsApology(t *testing.T) {
	completer := &stubCompleter{err: errors.New("quota exceeded")}
	c := NewComposer(testProfile(), completer)

	require.Equal(t, Apology(domain.LanguageEnglish),
		c.ComposeAI(context.Background(), "any openings?", domain.LanguageEnglish))
	require.Equal(t, Apology(domain.LanguageFrench),
		c.ComposeAI(context.Background(), "des places ?", domain.LanguageFrench))
}

func TestComposeAINilCompleterYieldsApology(t *testing.T) {
	c := NewComposer(testProfile(), nil)
	require.Equal(t, Apology(domain.LanguageEnglish),
		c.ComposeAI(context.Background(), "hello", domain.LanguageEnglish))
}

func TestComposeAIBlankReplyYieldsApology(t *testing.T) {
	completer := &stubCompleter{reply: "   "}
	c := NewComposer(testProfile(), completer)
	require.Equal(t, Apology(domain.LanguageEnglish),
		c.ComposeAI(context.Background(), "hello", domain.LanguageEnglish))
}
