package core

import "strings"

// ModelChoice is one selectable image-generation model.
type ModelChoice struct {
	// Key is the single-character menu key the operator types
	Key string

	// ID is the model identifier sent to the Gemini API
	ID string

	// Label is the human-readable menu line shown to the operator
	Label string
}

// ModelCatalog returns the fixed set of selectable models, in menu order.
// The first entry is the default.
func ModelCatalog() []ModelChoice {
	return []ModelChoice{
		{
			Key:   "1",
			ID:    "gemini-2.5-flash-image",
			Label: "Gemini 2.5 Flash (Recommended: fast, best consistency)",
		},
		{
			Key:   "2",
			ID:    "gemini-3-pro-image-preview",
			Label: "Gemini 3 Pro     (Experimental: higher detail, slower)",
		},
	}
}

// ResolveModel maps raw operator input to a model choice by exact key match
// after trimming whitespace. Unrecognized input resolves to the default
// (first) model rather than failing.
func ResolveModel(input string) ModelChoice {
	catalog := ModelCatalog()
	trimmed := strings.TrimSpace(input)
	for _, choice := range catalog {
		if trimmed == choice.Key {
			return choice
		}
	}
	return catalog[0]
}
