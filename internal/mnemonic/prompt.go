package mnemonic

import (
	"fmt"
	"strings"
)

const aidSystemPrompt = `You are a botany tutor who invents vivid, slightly silly memory hooks that link a plant's scientific name to what the plant looks like or is called. Your mnemonics stick because they are concrete and visual.`

func buildAidUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Scientific name: %s\n", input.ScientificName))
	b.WriteString(fmt.Sprintf("Common names: %s\n", strings.Join(input.CommonNames, ", ")))
	b.WriteString(fmt.Sprintf("Player error rate on this plant: %.0f%%\n", input.ErrorRate*100))

	if len(input.ConfusedWith) > 0 {
		b.WriteString("\nNames the player confuses it with:\n")
		for _, name := range input.ConfusedWith {
			b.WriteString(fmt.Sprintf("- %s\n", name))
		}
	}

	b.WriteString(`
Instructions:
1. Invent one short mnemonic (one sentence) that ties the SOUND of the scientific name to the plant's common name or appearance.
2. Break the scientific name into syllables or word parts and explain what each part suggests.
3. Add one short fun fact about the plant that reinforces the name.
Keep every field plain text, no markdown.`)

	return b.String()
}
