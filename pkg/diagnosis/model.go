package diagnosis

import (
	"time"

	"github.com/symptor-ai/symptor/pkg/common/models"
	"gorm.io/datatypes"
)

// Record is one completed diagnosis saved for an authenticated user. It is
// immutable after creation; the history view reads it newest-first.
type Record struct {
	ID              string                      `gorm:"primaryKey" json:"id"`
	UserID          string                      `gorm:"index;not null" json:"userId"`
	Symptoms        datatypes.JSONSlice[string] `json:"symptoms"`
	Diagnosis       string                      `gorm:"not null" json:"diagnosis"`
	Severity        models.Severity             `gorm:"not null" json:"severity"`
	AffectedSystems datatypes.JSONSlice[string] `json:"affectedSystems"`
	IsAIPrediction  bool                        `json:"isAiPrediction"`
	CreatedAt       time.Time                   `json:"createdAt"`
}

func (Record) TableName() string {
	return "diagnosis_records"
}
