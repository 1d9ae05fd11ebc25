package prompts

import (
	"fmt"
	"strings"

	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// BuildSystemInstruction composes the system turn for the text-completion
// service: persona, the business facts, then the fixed behavioral rules.
func BuildSystemInstruction(profile *config.BusinessProfile, lang domain.Language) string {
	return joinBlocks(
		fmt.Sprintf(PromptPersona, string(lang)),
		buildFactsBlock(profile),
		PromptBehaviorRules,
	)
}

// buildFactsBlock renders the profile as a flat "Key: value" block.
func buildFactsBlock(profile *config.BusinessProfile) string {
	var b strings.Builder
	writeFact(&b, "Name", profile.Name)
	writeFact(&b, "Address", profile.Address)
	writeFact(&b, "Phone", profile.Phone)
	writeFact(&b, "Email", profile.Email)
	writeFact(&b, "Website", profile.Website)
	writeFact(&b, "Hours", profile.Hours)
	writeFact(&b, "Programs", profile.ProgramsLine())
	writeFact(&b, "Meals", profile.Meals)
	writeFact(&b, "Fees", profile.FeesLine())
	writeFact(&b, "About", profile.About)
	writeFact(&b, "Safety", profile.Safety)
	return strings.TrimRight(b.String(), "\n")
}

func writeFact(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%s: %s\n", key, value)
}

// joinBlocks joins non-empty instruction blocks with blank lines.
func joinBlocks(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			parts = append(parts, block)
		}
	}
	return strings.Join(parts, "\n\n")
}
