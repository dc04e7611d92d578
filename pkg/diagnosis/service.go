package diagnosis

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/symptor-ai/symptor/pkg/catalog"
	"github.com/symptor-ai/symptor/pkg/common/kafka"
	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/common/models"
	"github.com/symptor-ai/symptor/pkg/matching"
)

// ErrInvalidInput rejects empty symptom lists before any scoring happens.
var ErrInvalidInput = errors.New("a non-empty list of symptoms is required")

// Fallback is the inference adapter consulted when the catalog yields no
// candidates.
type Fallback interface {
	Infer(ctx context.Context, symptoms []string) (*models.DiagnosisResult, error)
}

// Service is the single-shot diagnoser behind the symptom-checker form. It
// never asks clarifying questions; it returns its best guess together with
// the matched symptoms so the caller can judge confidence.
type Service struct {
	catalog  *catalog.Cache
	repo     *Repository
	fallback Fallback
	producer *kafka.Producer
}

func NewService(cache *catalog.Cache, repo *Repository, fallback Fallback, producer *kafka.Producer) *Service {
	return &Service{catalog: cache, repo: repo, fallback: fallback, producer: producer}
}

// Diagnose scores the reported symptoms against the catalog and returns one
// result. A userID of "" means the caller is anonymous and no history record
// is written.
func (s *Service) Diagnose(ctx context.Context, userID string, symptoms []string) (*models.DiagnosisResult, error) {
	var reported []string
	for _, symptom := range symptoms {
		if strings.TrimSpace(symptom) != "" {
			reported = append(reported, symptom)
		}
	}
	if len(reported) == 0 {
		return nil, ErrInvalidInput
	}

	conditions, err := s.catalog.Conditions(ctx)
	if err != nil {
		return nil, err
	}

	candidates := matching.Score(reported, conditions)
	if len(candidates) == 0 {
		return s.noMatch(ctx, userID, reported), nil
	}

	best := candidates[0]
	result := &models.DiagnosisResult{
		Diagnosis:       best.Condition.Name,
		Severity:        best.Condition.Severity,
		AffectedSystems: append([]string{}, best.Condition.AffectedSystems...),
		AffectedOrgans:  append([]string{}, best.Condition.AffectedOrgans...),
		Details: models.DiagnosisDetails{
			Description: best.Condition.Description,
			Treatment:   append([]string{}, best.Condition.Treatment...),
		},
		MatchedSymptoms: best.MatchedSymptoms,
	}

	s.record(ctx, userID, reported, result)
	return result, nil
}

// noMatch runs the fallback path. Every fallback failure degrades to the
// fixed Unknown Condition result; nothing on this path is a caller-visible
// error.
func (s *Service) noMatch(ctx context.Context, userID string, reported []string) *models.DiagnosisResult {
	if s.fallback == nil {
		return models.UnknownCondition()
	}

	result, err := s.fallback.Infer(ctx, reported)
	if err != nil {
		logger.Log.WithError(err).Warn("fallback inference unavailable, returning no-match result")
		return models.UnknownCondition()
	}

	s.record(ctx, userID, reported, result)
	return result
}

// record persists the history entry and publishes the completion event.
// Both are best-effort: diagnosis delivery takes priority over history
// logging.
func (s *Service) record(ctx context.Context, userID string, reported []string, result *models.DiagnosisResult) {
	if userID == "" {
		return
	}

	rec := &Record{
		UserID:          userID,
		Symptoms:        reported,
		Diagnosis:       result.Diagnosis,
		Severity:        result.Severity,
		AffectedSystems: result.AffectedSystems,
		IsAIPrediction:  result.IsAIPrediction,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("failed to persist diagnosis record")
		return
	}

	if s.producer != nil {
		err := s.producer.PublishEvent(ctx, "diagnosis.completed", "symptor-service", map[string]interface{}{
			"record_id": rec.ID,
			"user_id":   userID,
			"diagnosis": result.Diagnosis,
			"severity":  string(result.Severity),
		})
		if err != nil {
			logger.Log.WithError(err).Warn("failed to publish diagnosis event")
		}
	}
}

// Symptoms returns the sorted distinct symptom phrases across the catalog,
// used by the client's symptom picker.
func (s *Service) Symptoms(ctx context.Context) ([]string, error) {
	conditions, err := s.catalog.Conditions(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var symptoms []string
	for _, cond := range conditions {
		for _, symptom := range cond.Symptoms {
			if _, dup := seen[symptom]; dup {
				continue
			}
			seen[symptom] = struct{}{}
			symptoms = append(symptoms, symptom)
		}
	}
	sort.Strings(symptoms)
	return symptoms, nil
}

// History returns the caller's diagnosis records, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Record, error) {
	return s.repo.ListByUser(ctx, userID)
}
