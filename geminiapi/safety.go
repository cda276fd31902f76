package geminiapi

import "google.golang.org/genai"

// generationConfig returns the fixed configuration bundle sent with every
// request: exactly one safety category relaxed to block-only-high (a full
// "OFF" tends to draw 400s from the API) and image-only response content.
// All other safety categories keep service defaults.
func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SafetySettings: []*genai.SafetySetting{
			{
				Category:  genai.HarmCategorySexuallyExplicit,
				Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
			},
		},
		ResponseModalities: []string{"IMAGE"},
	}
}
