package dialogue

import (
	"time"

	"github.com/symptor-ai/symptor/pkg/matching"
)

// QuestionType tags how the assistant's previous turn ended, which decides
// how the next user input is interpreted.
type QuestionType string

const (
	QuestionGreeting     QuestionType = "greeting"
	QuestionGeneral      QuestionType = "general"
	QuestionSymptomCheck QuestionType = "symptom_check"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one transcript entry. The transcript is append-only.
type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-user conversation state. PendingSymptom is non-empty
// iff LastQuestionType is symptom_check; the ask/resolve transitions below
// are the only places either field changes, which keeps that invariant.
type Session struct {
	UserID            string       `json:"userId"`
	ConfirmedSymptoms []string     `json:"confirmedSymptoms"`
	RejectedSymptoms  []string     `json:"rejectedSymptoms"`
	PendingSymptom    string       `json:"pendingSymptom,omitempty"`
	LastQuestionType  QuestionType `json:"lastQuestionType"`
	Messages          []Message    `json:"messages"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// NewSession returns the initial state: no outstanding question, empty
// symptom sets.
func NewSession(userID string) *Session {
	return &Session{
		UserID:            userID,
		ConfirmedSymptoms: []string{},
		RejectedSymptoms:  []string{},
		LastQuestionType:  QuestionGeneral,
		Messages:          []Message{},
	}
}

// Ask records an outstanding yes/no question about the symptom.
func (s *Session) Ask(symptom string) {
	s.PendingSymptom = symptom
	s.LastQuestionType = QuestionSymptomCheck
}

// ResolvePending clears the outstanding question regardless of how it was
// answered.
func (s *Session) ResolvePending() {
	s.PendingSymptom = ""
	s.LastQuestionType = QuestionGeneral
}

func (s *Session) Confirm(symptom string) {
	if s.HasConfirmed(symptom) || s.HasRejected(symptom) {
		return
	}
	s.ConfirmedSymptoms = append(s.ConfirmedSymptoms, symptom)
}

func (s *Session) Reject(symptom string) {
	if s.HasRejected(symptom) {
		return
	}
	s.RejectedSymptoms = append(s.RejectedSymptoms, symptom)
}

func (s *Session) HasConfirmed(symptom string) bool {
	return containsPhrase(s.ConfirmedSymptoms, symptom)
}

func (s *Session) HasRejected(symptom string) bool {
	return containsPhrase(s.RejectedSymptoms, symptom)
}

func (s *Session) Append(sender, text string, at time.Time) {
	s.Messages = append(s.Messages, Message{Sender: sender, Text: text, Timestamp: at})
}

func containsPhrase(phrases []string, phrase string) bool {
	key := matching.NormalizePhrase(phrase)
	for _, p := range phrases {
		if matching.NormalizePhrase(p) == key {
			return true
		}
	}
	return false
}
