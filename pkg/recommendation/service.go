package recommendation

import (
	"context"

	"github.com/symptor-ai/symptor/pkg/common/models"
	"github.com/symptor-ai/symptor/pkg/matching"
)

const suppressionMessage = "Based on the severity of your symptoms, we recommend consulting a healthcare professional before attempting any exercises."

// MatchResult is the caller-facing shape for the wellness endpoint.
type MatchResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

// Lister lets tests supply a fixed recommendation set.
type Lister interface {
	List(ctx context.Context) ([]Recommendation, error)
}

type Service struct {
	repo Lister
}

func NewService(repo Lister) *Service {
	return &Service{repo: repo}
}

// Match returns the wellness items whose symptom tags overlap the report.
// High and Critical severities suppress all suggestions: exercise advice is
// never shown for symptoms that warrant a professional.
func (s *Service) Match(ctx context.Context, symptoms []string, severity models.Severity) (*MatchResult, error) {
	if severity.Urgent() {
		return &MatchResult{Recommendations: []Recommendation{}, Message: suppressionMessage}, nil
	}

	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	tokens := matching.TokenSet(symptoms...)
	matched := []Recommendation{}
	for _, rec := range recs {
		for _, tag := range rec.Symptoms {
			if matching.PhraseSatisfied(tag, tokens) {
				matched = append(matched, rec)
				break
			}
		}
	}

	return &MatchResult{Recommendations: matched}, nil
}

func (s *Service) List(ctx context.Context) ([]Recommendation, error) {
	return s.repo.List(ctx)
}
