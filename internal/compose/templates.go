package compose

import (
	"fmt"

	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// TemplateSet selects which canned-answer table a surface uses. The FAQ set
// is the full answer table used for messaging; the voice set is the narrower
// table spoken inside the call flow.
type TemplateSet string

const (
	SetFAQ   TemplateSet = "faq"
	SetVoice TemplateSet = "voice"
)

// Fallback literals for blank profile fields.
const (
	fallbackHours      = "7 AM to 6 PM"
	fallbackVoiceHours = "Monday to Friday"
	fallbackMeals      = "All meals are prepared fresh daily."
	fallbackPrograms   = "We focus on play-based learning and early literacy."
	fallbackTourLink   = "our tour page online."
)

type templateKey struct {
	set    TemplateSet
	intent domain.Intent
	lang   domain.Language
}

type templateFunc func(p *config.BusinessProfile) string

var templates = map[templateKey]templateFunc{
	{SetFAQ, domain.IntentFees, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("At %s, our fees depend on your child's age and program. Would you like me to send you a fee sheet or connect you with the director?", p.Name)
	},
	{SetFAQ, domain.IntentHours, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("%s is usually open during the hours mentioned on our website or daycare details - typically around %s.", p.Name, orDefault(p.Hours, fallbackHours))
	},
	{SetFAQ, domain.IntentMeals, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("%s provides healthy meals and snacks throughout the day. %s", p.Name, orDefault(p.Meals, fallbackMeals))
	},
	{SetFAQ, domain.IntentPrograms, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("%s offers several programs for different age groups. %s", p.Name, orDefault(p.ProgramsLine(), fallbackPrograms))
	},
	{SetFAQ, domain.IntentTour, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("You can book a tour at %s", orDefault(p.TourLink, fallbackTourLink))
	},
	{SetFAQ, domain.IntentUrgent, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return "Okay, this seems urgent. Please hold while I connect you to the daycare owner."
	},
	{SetFAQ, domain.IntentOpenings, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return "We currently have limited openings. May I know your child's age so I can check availability?"
	},
	{SetFAQ, domain.IntentGeneral, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("Thanks for your question! I can answer about fees, hours, meals, programs, or help you book a tour of %s.", p.Name)
	},

	{SetVoice, domain.IntentTour, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return "Wonderful! I'll text you our tour booking link next."
	},
	{SetVoice, domain.IntentTour, domain.LanguageFrench}: func(p *config.BusinessProfile) string {
		return "Formidable ! Je vais vous envoyer le lien pour réserver une visite."
	},
	{SetVoice, domain.IntentFees, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return trimOneSpace(fmt.Sprintf("Our fees depend on the program. %s", p.FeesLine()))
	},
	{SetVoice, domain.IntentFees, domain.LanguageFrench}: func(p *config.BusinessProfile) string {
		return trimOneSpace(fmt.Sprintf("Nos frais dépendent du programme. %s", p.FeesLine()))
	},
	{SetVoice, domain.IntentHours, domain.LanguageEnglish}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("We're open %s.", orDefault(p.Hours, fallbackVoiceHours))
	},
	{SetVoice, domain.IntentHours, domain.LanguageFrench}: func(p *config.BusinessProfile) string {
		return fmt.Sprintf("Nous sommes ouverts %s.", orDefault(p.Hours, "du lundi au vendredi"))
	},
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// trimOneSpace drops the trailing space left when an interpolated field was
// blank.
func trimOneSpace(s string) string {
	if len(s) > 0 && s[len(s)-1] == ' ' {
		return s[:len(s)-1]
	}
	return s
}
