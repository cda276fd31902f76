package logging

import "regexp"

// RedactedPlaceholder is the string used to replace sensitive data
const RedactedPlaceholder = "[REDACTED]"

// sensitivePatterns contains compiled regex patterns for detecting sensitive
// data in log messages. Compiled once at package initialization.
var sensitivePatterns = []*regexp.Regexp{
	// Google API keys (AIza followed by 35 key characters)
	regexp.MustCompile(`(AIza[a-zA-Z0-9_-]{35})`),
	// Bearer tokens
	regexp.MustCompile(`(?i)(bearer\s+[a-zA-Z0-9._-]{20,})`),
	// Generic key/secret assignments such as "api_key=..." in echoed errors
	regexp.MustCompile(`(?i)((?:api_key|apikey|secret|token)\s*[:=]\s*[^\s,;]{8,})`),
}

// RedactSensitiveData scans a string and redacts any detected credential
// material. API errors from the Gemini client can echo request URLs that
// carry the key as a query parameter, so every message logged at error level
// passes through this filter first.
//
// This is a pure function - it takes a string and returns a sanitized string.
func RedactSensitiveData(value string) string {
	if value == "" {
		return value
	}

	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}
