package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/common/models"
)

// ErrUnavailable covers every failure mode of the fallback path: transport
// errors, timeouts, malformed JSON, and schema violations. Callers treat it
// exactly like "no match found".
var ErrUnavailable = errors.New("fallback inference unavailable")

const systemPrompt = `You are a medical triage lookup service. Given a list of reported symptoms, respond with a single JSON object and nothing else, using exactly these fields: "name" (string, the most likely condition), "severity" (one of "Low", "Medium", "High", "Critical"), "description" (string), "treatment" (array of strings), "affectedSystems" (array of strings). Do not diagnose emergencies; if the symptoms suggest one, set severity to "Critical".`

// Completer is the external inference collaborator.
type Completer interface {
	Complete(ctx context.Context, messages []Message, jsonMode bool) (string, error)
}

// Adapter normalizes free-text inference output into the shared diagnosis
// envelope. It is invoked only when the catalog yields zero candidates.
type Adapter struct {
	client Completer
}

func NewAdapter(client Completer) *Adapter {
	return &Adapter{client: client}
}

type inferredCondition struct {
	Name            string   `json:"name"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	Treatment       []string `json:"treatment"`
	AffectedSystems []string `json:"affectedSystems"`
}

// Infer asks the inference collaborator for a best-guess condition and
// validates the structured payload before trusting it.
func (a *Adapter) Infer(ctx context.Context, symptoms []string) (*models.DiagnosisResult, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Reported symptoms: " + strings.Join(symptoms, ", ")},
	}

	raw, err := a.client.Complete(ctx, messages, true)
	if err != nil {
		logger.Log.WithError(err).Warn("fallback inference call failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var inferred inferredCondition
	if err := json.Unmarshal([]byte(raw), &inferred); err != nil {
		logger.Log.WithError(err).Warn("fallback inference returned malformed JSON")
		return nil, fmt.Errorf("%w: malformed payload", ErrUnavailable)
	}
	if strings.TrimSpace(inferred.Name) == "" {
		return nil, fmt.Errorf("%w: payload missing condition name", ErrUnavailable)
	}
	severity, ok := models.ParseSeverity(inferred.Severity)
	if !ok {
		return nil, fmt.Errorf("%w: payload has unknown severity %q", ErrUnavailable, inferred.Severity)
	}

	result := &models.DiagnosisResult{
		Diagnosis:       inferred.Name,
		Severity:        severity,
		AffectedSystems: inferred.AffectedSystems,
		AffectedOrgans:  []string{},
		Details: models.DiagnosisDetails{
			Description: inferred.Description,
			Treatment:   inferred.Treatment,
		},
		IsAIPrediction: true,
	}
	if result.AffectedSystems == nil {
		result.AffectedSystems = []string{}
	}
	if result.Details.Treatment == nil {
		result.Details.Treatment = []string{}
	}
	return result, nil
}
