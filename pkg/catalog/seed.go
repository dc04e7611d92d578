package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/symptor-ai/symptor/pkg/common/models"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Conditions []seedCondition `yaml:"conditions"`
}

type seedCondition struct {
	Name            string   `yaml:"name"`
	Symptoms        []string `yaml:"symptoms"`
	Severity        string   `yaml:"severity"`
	AffectedSystems []string `yaml:"affectedSystems"`
	AffectedOrgans  []string `yaml:"affectedOrgans"`
	Description     string   `yaml:"description"`
	Treatment       []string `yaml:"treatment"`
}

// LoadFile reads a catalog seed file. An empty path yields the compiled-in
// default set.
func LoadFile(path string) ([]Condition, error) {
	if path == "" {
		return DefaultConditions(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var file seedFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	if len(file.Conditions) == 0 {
		return nil, fmt.Errorf("catalog seed file %s contains no conditions", path)
	}

	conditions := make([]Condition, 0, len(file.Conditions))
	for _, sc := range file.Conditions {
		severity, ok := models.ParseSeverity(sc.Severity)
		if !ok {
			return nil, fmt.Errorf("condition %q: unknown severity %q", sc.Name, sc.Severity)
		}
		cond := Condition{
			Name:            sc.Name,
			Symptoms:        sc.Symptoms,
			Severity:        severity,
			AffectedSystems: sc.AffectedSystems,
			AffectedOrgans:  sc.AffectedOrgans,
			Description:     sc.Description,
			Treatment:       sc.Treatment,
		}
		if err := cond.Validate(); err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

// DefaultConditions is the curated starter catalog.
func DefaultConditions() []Condition {
	return []Condition{
		{
			Name:            "Migraine",
			Symptoms:        []string{"headache", "nausea", "sensitivity to light", "dizzy"},
			Severity:        models.SeverityMedium,
			AffectedSystems: []string{"Nervous"},
			AffectedOrgans:  []string{"Brain"},
			Description:     "A neurological condition characterized by intense, debilitating headaches.",
			Treatment:       []string{"Pain relievers", "Rest in a dark room", "Hydration"},
		},
		{
			Name:            "Gastroenteritis",
			Symptoms:        []string{"stomach pain", "nausea", "vomiting", "diarrhea", "belly pain"},
			Severity:        models.SeverityMedium,
			AffectedSystems: []string{"Digestive"},
			AffectedOrgans:  []string{"Stomach", "Intestines"},
			Description:     "Inflammation of the stomach and intestines, typically resulting from bacterial toxins or viral infection.",
			Treatment:       []string{"Hydration", "Rest", "Bland diet"},
		},
		{
			Name:            "Common Cold",
			Symptoms:        []string{"runny nose", "sore throat", "cough", "congestion", "sneezing"},
			Severity:        models.SeverityLow,
			AffectedSystems: []string{"Respiratory"},
			AffectedOrgans:  []string{"Lungs"},
			Description:     "A common viral infection of the nose and throat.",
			Treatment:       []string{"Rest", "Fluids", "Over-the-counter medicines"},
		},
		{
			Name:            "Heart Attack",
			Symptoms:        []string{"chest pain", "shortness of breath", "arm pain", "sweating", "nausea"},
			Severity:        models.SeverityCritical,
			AffectedSystems: []string{"Cardiovascular"},
			AffectedOrgans:  []string{"Heart"},
			Description:     "A blockage of blood flow to the heart muscle.",
			Treatment:       []string{"Emergency medical help", "Aspirin", "CPR if unconscious"},
		},
	}
}
