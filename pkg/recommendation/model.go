package recommendation

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation is one wellness item (a yoga pose, exercise, or stretch)
// tagged with the symptoms it may help with.
type Recommendation struct {
	ID           string                      `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"uniqueIndex;not null" json:"name"`
	Type         string                      `gorm:"not null" json:"type"` // Yoga, Exercise, Stretch
	Symptoms     datatypes.JSONSlice[string] `json:"symptoms"`
	Duration     string                      `json:"duration"`
	Difficulty   string                      `json:"difficulty"`
	Description  string                      `gorm:"type:text" json:"description"`
	ImageURL     string                      `json:"imageUrl"`
	ImageSource  string                      `json:"imageSource"`
	ImageLicense string                      `json:"imageLicense"`
	SafetyTips   datatypes.JSONSlice[string] `json:"safetyTips"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
