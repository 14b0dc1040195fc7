package mnemonic

import "github.com/abhisek/leafiz/internal/llm"

// AidSchema defines the JSON schema for memory-aid generation.
var AidSchema = &llm.Schema{
	Name:        "memory-aid",
	Description: "A mnemonic linking a plant's scientific name to its appearance or common name",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "One-sentence memory hook tying the scientific name's sound to the plant",
			},
			"breakdown": map[string]any{
				"type":        "string",
				"description": "The scientific name split into parts with what each part suggests",
			},
			"fun_fact": map[string]any{
				"type":        "string",
				"description": "One short fact about the plant that reinforces the name",
			},
		},
		"required":             []any{"mnemonic", "breakdown", "fun_fact"},
		"additionalProperties": false,
	},
}
