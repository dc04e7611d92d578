package inference

import (
	"context"
	"errors"
	"testing"

	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/common/models"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type stubCompleter struct {
	response string
	err      error
	jsonMode bool
}

func (s *stubCompleter) Complete(ctx context.Context, messages []Message, jsonMode bool) (string, error) {
	s.jsonMode = jsonMode
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestInferParsesValidPayload(t *testing.T) {
	stub := &stubCompleter{response: `{
		"name": "Tension Headache",
		"severity": "low",
		"description": "Muscle tension related headache.",
		"treatment": ["Rest", "Hydration"],
		"affectedSystems": ["Nervous"]
	}`}
	adapter := NewAdapter(stub)

	result, err := adapter.Infer(context.Background(), []string{"dull headache", "tight neck"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stub.jsonMode {
		t.Fatal("expected JSON mode to be requested")
	}
	if result.Diagnosis != "Tension Headache" {
		t.Fatalf("expected name mapped, got %s", result.Diagnosis)
	}
	if result.Severity != models.SeverityLow {
		t.Fatalf("expected severity parsed case-insensitively, got %s", result.Severity)
	}
	if !result.IsAIPrediction {
		t.Fatal("fallback results must be flagged as AI predictions")
	}
	if result.AffectedOrgans == nil {
		t.Fatal("affected organs must be an empty slice, not nil")
	}
}

func TestInferTransportErrorIsUnavailable(t *testing.T) {
	adapter := NewAdapter(&stubCompleter{err: errors.New("connection timed out")})

	_, err := adapter.Infer(context.Background(), []string{"headache"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestInferMalformedJSONIsUnavailable(t *testing.T) {
	adapter := NewAdapter(&stubCompleter{response: "I think it might be a cold."})

	_, err := adapter.Infer(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestInferMissingNameIsUnavailable(t *testing.T) {
	adapter := NewAdapter(&stubCompleter{response: `{"severity": "Low"}`})

	_, err := adapter.Infer(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestInferUnknownSeverityIsUnavailable(t *testing.T) {
	adapter := NewAdapter(&stubCompleter{response: `{"name": "Cold", "severity": "Moderate"}`})

	_, err := adapter.Infer(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
