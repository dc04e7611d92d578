package matching

import (
	"sort"

	"github.com/symptor-ai/symptor/pkg/catalog"
)

// Candidate is one scored condition from a single matching pass. It is
// recomputed on every call and never persisted.
type Candidate struct {
	Condition       catalog.Condition
	MatchCount      int
	TotalSymptoms   int
	MatchedSymptoms []string
}

// Ratio is the fraction of the condition's symptoms present in the report.
func (c Candidate) Ratio() float64 {
	if c.TotalSymptoms == 0 {
		return 0
	}
	return float64(c.MatchCount) / float64(c.TotalSymptoms)
}

// Score ranks catalog conditions by symptom overlap with the reported
// phrases. Only conditions with at least one match are returned, sorted
// descending by match count; ties keep catalog order, so identical inputs
// always produce identical rankings.
func Score(reported []string, conditions []catalog.Condition) []Candidate {
	tokens := TokenSet(reported...)
	if len(tokens) == 0 {
		return nil
	}

	var candidates []Candidate
	for _, cond := range conditions {
		var matched []string
		for _, symptom := range cond.Symptoms {
			if PhraseSatisfied(symptom, tokens) {
				matched = append(matched, symptom)
			}
		}
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Condition:       cond,
			MatchCount:      len(matched),
			TotalSymptoms:   len(cond.Symptoms),
			MatchedSymptoms: matched,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchCount > candidates[j].MatchCount
	})

	return candidates
}

// ExtractSymptoms returns every catalog symptom phrase satisfied by the free
// text, deduplicated, in catalog order. Used to turn a chat message into
// structured symptoms.
func ExtractSymptoms(text string, conditions []catalog.Condition) []string {
	tokens := TokenSet(text)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var found []string
	for _, cond := range conditions {
		for _, symptom := range cond.Symptoms {
			key := NormalizePhrase(symptom)
			if _, dup := seen[key]; dup {
				continue
			}
			if PhraseSatisfied(symptom, tokens) {
				seen[key] = struct{}{}
				found = append(found, symptom)
			}
		}
	}
	return found
}
