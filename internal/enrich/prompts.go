package enrich

import (
	"fmt"
	"strings"
)

const brandContextTemplate = `The following is the complete machine catalog for the brand %s.
Use it to keep terminology and series naming consistent across answers.

%s`

const translationTemplate = `Translate the gym machine name "%s" by the brand %s into natural Korean.
Keep series names and model codes as-is. Answer with the translated name only, no explanation.`

const classificationTemplate = `Which body parts does the gym machine "%s" by the brand %s primarily train?
Answer with a JSON array of lowercase body part names only, for example ["pectorals", "triceps"].
Choose only from: %s.`

// BrandContext renders the cached per-brand context block from the
// brand's machine names.
func BrandContext(brand string, names []string) string {
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString("- ")
		sb.WriteString(n)
		sb.WriteString("\n")
	}
	return fmt.Sprintf(brandContextTemplate, brand, sb.String())
}

// ContextInstruction is the system instruction attached to the brand
// context cache.
const ContextInstruction = "Refer to this brand's machine list when answering following requests."

func translationPrompt(name, brand string) string {
	return fmt.Sprintf(translationTemplate, name, brand)
}

func classificationPrompt(name, brand string) string {
	return fmt.Sprintf(classificationTemplate, name, brand, strings.Join(AllowedBodyParts, ", "))
}
