package models

import (
	"strings"
	"time"
)

// Severity is the fixed triage scale shared by conditions, diagnosis
// responses, and history records.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Urgent reports whether responses carrying this severity should include an
// elevated urgency warning.
func (s Severity) Urgent() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// ParseSeverity accepts the enum values case-insensitively.
func ParseSeverity(raw string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	}
	return "", false
}

// DiagnosisDetails carries the descriptive part of a matched condition.
type DiagnosisDetails struct {
	Description string   `json:"description"`
	Treatment   []string `json:"treatment"`
}

// DiagnosisResult is the caller-facing envelope emitted by both the
// single-shot diagnoser and the chat assistant, shaped so the client can
// drive the body visualization without a second lookup.
type DiagnosisResult struct {
	Diagnosis       string           `json:"diagnosis"`
	Severity        Severity         `json:"severity"`
	AffectedSystems []string         `json:"affectedSystems"`
	AffectedOrgans  []string         `json:"affectedOrgans"`
	Details         DiagnosisDetails `json:"details"`
	MatchedSymptoms []string         `json:"matchedSymptoms,omitempty"`
	IsAIPrediction  bool             `json:"isAiPrediction,omitempty"`
	Message         string           `json:"message,omitempty"`
}

// UnknownCondition is the fixed terminal result when neither the catalog nor
// the fallback inference produced a match. It is a valid outcome, not an
// error.
func UnknownCondition() *DiagnosisResult {
	return &DiagnosisResult{
		Diagnosis:       "Unknown Condition",
		Severity:        SeverityLow,
		AffectedSystems: []string{},
		AffectedOrgans:  []string{},
		Details:         DiagnosisDetails{Treatment: []string{}},
		Message:         "No matching conditions found for these symptoms. Please consult a medical professional.",
	}
}

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // diagnosis.completed
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}
