package dialogue

import "github.com/symptor-ai/symptor/pkg/matching"

// Fixed response texts and the small answer lexicons, kept in one file so
// wording can be tuned without touching the turn logic.

const (
	Disclaimer = "\n\n(Note: I am an automated assistant, not a doctor. This is for informational purposes only. Please consult a medical professional for advice.)"

	emergencyResponse = "IMPORTANT SAFETY ALERT: your description suggests a potential medical emergency. I cannot evaluate these symptoms safely. Please call emergency services or visit the nearest emergency room immediately."

	greetingResponse = "Hello! I'm Symptor, your symptom assistant. Tell me what's bothering you, for example \"I have a headache and feel nauseous\"."

	describePrompt = "I couldn't recognize any symptoms in that. Could you describe what you're feeling? For example \"sore throat\" or \"stomach pain\"."

	noMatchResponse = "I couldn't find a condition in my records matching those symptoms. Please consult a medical professional for a proper evaluation."

	questionFormat = "Are you also experiencing %s? (yes/no)"
)

var affirmativeLexemes = map[string]struct{}{
	"yes": {}, "yeah": {}, "yep": {}, "sure": {}, "definitely": {}, "correct": {},
}

var negativeLexemes = map[string]struct{}{
	"no": {}, "nope": {}, "nah": {}, "not": {},
}

var greetingLexemes = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {},
}

type answer int

const (
	answerAmbiguous answer = iota
	answerYes
	answerNo
)

// classifyAnswer reads a yes/no reply to a pending symptom question.
// Anything that is neither clearly affirmative nor clearly negative is
// ambiguous and gets treated as fresh input.
func classifyAnswer(text string) answer {
	for _, token := range matching.Tokenize(text) {
		if _, ok := affirmativeLexemes[token]; ok {
			return answerYes
		}
		if _, ok := negativeLexemes[token]; ok {
			return answerNo
		}
	}
	return answerAmbiguous
}

func isGreeting(text string) bool {
	for _, token := range matching.Tokenize(text) {
		if _, ok := greetingLexemes[token]; ok {
			return true
		}
	}
	return false
}
