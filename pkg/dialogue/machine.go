package dialogue

import (
	"fmt"
	"strings"

	"github.com/symptor-ai/symptor/pkg/catalog"
	"github.com/symptor-ai/symptor/pkg/matching"
)

// Thresholds control when the machine stops asking questions and commits to
// a diagnosis. The values come from the source material and carry no
// clinical meaning, so they stay configurable.
type Thresholds struct {
	// StrongRatio is the overlap ratio at which a candidate counts as a
	// strong match.
	StrongRatio float64
	// ConfirmRatio bounds the "almost sure, but confirm one more" band:
	// strong candidates below it still get one clarifying question.
	ConfirmRatio float64
	// MinCount and SmallSetSize make a candidate strong when most of a very
	// short symptom list is already confirmed.
	MinCount     int
	SmallSetSize int
}

func DefaultThresholds() Thresholds {
	return Thresholds{StrongRatio: 0.7, ConfirmRatio: 0.8, MinCount: 2, SmallSetSize: 3}
}

// Machine advances a dialogue session one user turn at a time. It performs
// no I/O; the service owns locking, transcripts, and persistence.
type Machine struct {
	thresholds Thresholds
}

func NewMachine(thresholds Thresholds) *Machine {
	return &Machine{thresholds: thresholds}
}

// Advance mutates the session according to the user's message and returns
// the assistant's reply for this turn.
func (m *Machine) Advance(sess *Session, userText string, conditions []catalog.Condition) string {
	if IsEmergency(userText) {
		return emergencyResponse
	}

	answered := false
	if sess.LastQuestionType == QuestionSymptomCheck && sess.PendingSymptom != "" {
		switch classifyAnswer(userText) {
		case answerYes:
			sess.Confirm(sess.PendingSymptom)
			answered = true
		case answerNo:
			sess.Reject(sess.PendingSymptom)
			answered = true
		}
		sess.ResolvePending()
	}

	// Ambiguous answers and ordinary messages both go through extraction.
	// Rejected symptoms never re-enter the confirmed set this way.
	if !answered {
		for _, symptom := range matching.ExtractSymptoms(userText, conditions) {
			sess.Confirm(symptom)
		}
	}

	if len(sess.ConfirmedSymptoms) == 0 {
		if isGreeting(userText) {
			sess.LastQuestionType = QuestionGreeting
			return greetingResponse
		}
		sess.LastQuestionType = QuestionGeneral
		return describePrompt
	}

	candidates := matching.Score(sess.ConfirmedSymptoms, conditions)
	if len(candidates) == 0 {
		sess.LastQuestionType = QuestionGeneral
		return noMatchResponse
	}

	top := candidates[0]
	ratio := top.Ratio()
	strong := ratio >= m.thresholds.StrongRatio ||
		(top.MatchCount >= m.thresholds.MinCount && top.TotalSymptoms <= m.thresholds.SmallSetSize)
	next := m.nextAskable(top, sess)

	if strong {
		if next != "" && ratio < m.thresholds.ConfirmRatio {
			sess.Ask(next)
			return fmt.Sprintf(questionFormat, next)
		}
		return m.diagnose(sess, top)
	}

	if next != "" {
		sess.Ask(next)
		return fmt.Sprintf(questionFormat, next)
	}

	// Questions exhausted; emit the best candidate anyway.
	return m.diagnose(sess, top)
}

// nextAskable picks the candidate's first symptom that is neither confirmed
// nor rejected. Rejected symptoms are never re-asked.
func (m *Machine) nextAskable(candidate matching.Candidate, sess *Session) string {
	for _, symptom := range candidate.Condition.Symptoms {
		if !sess.HasConfirmed(symptom) && !sess.HasRejected(symptom) {
			return symptom
		}
	}
	return ""
}

func (m *Machine) diagnose(sess *Session, candidate matching.Candidate) string {
	sess.LastQuestionType = QuestionGeneral

	cond := candidate.Condition
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your symptoms, the closest match is %s. %s", cond.Name, cond.Description)
	if len(cond.Treatment) > 0 {
		b.WriteString("\n\nSuggested care:")
		for _, step := range cond.Treatment {
			b.WriteString("\n- ")
			b.WriteString(step)
		}
	}
	if cond.Severity.Urgent() {
		b.WriteString("\n\nThis condition can be serious. Please seek medical attention promptly.")
	}
	b.WriteString(Disclaimer)
	return b.String()
}
