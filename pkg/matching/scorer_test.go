package matching

import (
	"reflect"
	"testing"

	"github.com/symptor-ai/symptor/pkg/catalog"
	"github.com/symptor-ai/symptor/pkg/common/models"
)

func testCatalog() []catalog.Condition {
	return []catalog.Condition{
		{
			Name:     "Migraine",
			Symptoms: []string{"headache", "nausea", "sensitivity to light", "dizzy"},
			Severity: models.SeverityMedium,
		},
		{
			Name:     "Gastroenteritis",
			Symptoms: []string{"stomach pain", "nausea", "vomiting", "diarrhea", "belly pain"},
			Severity: models.SeverityMedium,
		},
		{
			Name:     "Ear Infection",
			Symptoms: []string{"ear pain", "fever"},
			Severity: models.SeverityLow,
		},
	}
}

func TestScoreRanksByMatchCount(t *testing.T) {
	candidates := Score([]string{"headache", "nausea"}, testCatalog())
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Condition.Name != "Migraine" {
		t.Fatalf("expected Migraine on top, got %s", candidates[0].Condition.Name)
	}
	if candidates[0].MatchCount != 2 || candidates[0].TotalSymptoms != 4 {
		t.Fatalf("expected 2/4 match, got %d/%d", candidates[0].MatchCount, candidates[0].TotalSymptoms)
	}
	if candidates[0].Ratio() != 0.5 {
		t.Fatalf("expected ratio 0.5, got %v", candidates[0].Ratio())
	}
}

func TestScoreFullOverlapIsTopMatch(t *testing.T) {
	reported := []string{"headache", "nausea", "sensitivity to light", "dizzy"}
	candidates := Score(reported, testCatalog())
	if len(candidates) == 0 {
		t.Fatal("expected candidates")
	}
	top := candidates[0]
	if top.Condition.Name != "Migraine" {
		t.Fatalf("expected Migraine, got %s", top.Condition.Name)
	}
	if top.MatchCount != len(top.Condition.Symptoms) {
		t.Fatalf("expected full match, got %d of %d", top.MatchCount, len(top.Condition.Symptoms))
	}
	if top.Ratio() != 1.0 {
		t.Fatalf("expected ratio 1.0, got %v", top.Ratio())
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	reported := []string{"nausea", "vomiting"}
	first := Score(reported, testCatalog())
	for i := 0; i < 10; i++ {
		again := Score(reported, testCatalog())
		if len(again) != len(first) {
			t.Fatalf("run %d: candidate count changed", i)
		}
		for j := range first {
			if again[j].Condition.Name != first[j].Condition.Name {
				t.Fatalf("run %d: ordering changed at %d", i, j)
			}
		}
	}
}

func TestScoreTieKeepsCatalogOrder(t *testing.T) {
	// nausea alone matches Migraine and Gastroenteritis with one symptom
	// each; the earlier catalog entry must win the tie.
	candidates := Score([]string{"nausea"}, testCatalog())
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Condition.Name != "Migraine" {
		t.Fatalf("expected catalog order tiebreak, got %s first", candidates[0].Condition.Name)
	}
}

func TestPhraseMatchingIsWholeToken(t *testing.T) {
	// "near" must not satisfy "ear" via substring.
	candidates := Score([]string{"near pain"}, testCatalog())
	for _, c := range candidates {
		if c.Condition.Name == "Ear Infection" {
			t.Fatal("substring match produced a false positive")
		}
	}
}

func TestNormalizationIgnoresCaseAndPunctuation(t *testing.T) {
	candidates := Score([]string{"Sensitivity, To LIGHT!", "headache."}, testCatalog())
	if len(candidates) == 0 || candidates[0].Condition.Name != "Migraine" {
		t.Fatal("expected normalized phrases to match Migraine")
	}
	if candidates[0].MatchCount != 2 {
		t.Fatalf("expected 2 matched symptoms, got %d", candidates[0].MatchCount)
	}
}

func TestScoreEmptyInput(t *testing.T) {
	if got := Score(nil, testCatalog()); got != nil {
		t.Fatalf("expected no candidates for empty input, got %d", len(got))
	}
}

func TestExtractSymptoms(t *testing.T) {
	found := ExtractSymptoms("I have a terrible headache and I feel dizzy", testCatalog())
	want := []string{"headache", "dizzy"}
	if !reflect.DeepEqual(found, want) {
		t.Fatalf("expected %v, got %v", want, found)
	}
}

func TestExtractSymptomsMultiTokenPhrase(t *testing.T) {
	found := ExtractSymptoms("there is a strong sensitivity to light since yesterday", testCatalog())
	if len(found) != 1 || found[0] != "sensitivity to light" {
		t.Fatalf("expected multi-token phrase match, got %v", found)
	}
}
