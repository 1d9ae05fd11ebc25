package language

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

func TestDetectDefaultsToEnglish(t *testing.T) {
	d := NewDetector()
	require.Equal(t, domain.LanguageEnglish, d.Detect(""))
	require.Equal(t, domain.LanguageEnglish, d.Detect("   "))
}

func TestDetectEnglish(t *testing.T) {
	d := NewDetector()
	require.Equal(t, domain.LanguageEnglish, d.Detect("What are your opening hours this week?"))
	require.Equal(t, domain.LanguageEnglish, d.Detect("I would like to book a tour for my daughter"))
}

func TestDetectFrenchSentence(t *testing.T) {
	d := NewDetector()
	require.Equal(t, domain.LanguageFrench, d.Detect("Quels sont vos horaires d'ouverture cette semaine ?"))
}

func TestDetectFrenchGreetingOverride(t *testing.T) {
	// Single greeting words are too short for statistical detection.
	d := NewDetector()
	require.Equal(t, domain.LanguageFrench, d.Detect("Bonjour"))
	require.Equal(t, domain.LanguageFrench, d.Detect("salut, I have a question"))
}
