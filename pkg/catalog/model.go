package catalog

import (
	"fmt"
	"time"

	"github.com/symptor-ai/symptor/pkg/common/models"
	"gorm.io/datatypes"
)

// Condition is one diagnosable catalog entry. Entries are created and edited
// by the admin collaborator; the matching core only reads them.
type Condition struct {
	ID              string                      `gorm:"primaryKey" json:"id"`
	Name            string                      `gorm:"uniqueIndex;not null" json:"name"`
	Symptoms        datatypes.JSONSlice[string] `json:"symptoms"`
	Severity        models.Severity             `gorm:"not null" json:"severity"`
	AffectedSystems datatypes.JSONSlice[string] `json:"affectedSystems"`
	AffectedOrgans  datatypes.JSONSlice[string] `json:"affectedOrgans"`
	Description     string                      `gorm:"type:text" json:"description"`
	Treatment       datatypes.JSONSlice[string] `json:"treatment"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

func (Condition) TableName() string {
	return "conditions"
}

func (c *Condition) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("condition name is required")
	}
	if len(c.Symptoms) == 0 {
		return fmt.Errorf("condition %q has no symptoms", c.Name)
	}
	if !c.Severity.Valid() {
		return fmt.Errorf("condition %q has invalid severity %q", c.Name, c.Severity)
	}
	return nil
}
