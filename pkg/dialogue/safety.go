package dialogue

import "regexp"

// safetyPattern short-circuits the whole turn: emergency language gets the
// fixed redirect and no symptom-state mutation, regardless of session state.
var safetyPattern = regexp.MustCompile(`(?i)\b(suicide|kill myself|crushing chest|severe pain|unbearable|stroke|heart attack|paralysis|numbness|10/10|emergency)\b`)

// IsEmergency reports whether the message matches the emergency keyword
// pattern.
func IsEmergency(text string) bool {
	return safetyPattern.MatchString(text)
}
