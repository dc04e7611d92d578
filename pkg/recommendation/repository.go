package recommendation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Recommendation{})
}

func (r *Repository) List(ctx context.Context) ([]Recommendation, error) {
	var recs []Recommendation
	err := r.db.WithContext(ctx).Order("created_at, name").Find(&recs).Error
	return recs, err
}

func (r *Repository) Upsert(ctx context.Context, rec *Recommendation) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"type", "symptoms", "duration", "difficulty", "description",
				"image_url", "image_source", "image_license", "safety_tips",
			}),
		}).
		Create(rec).Error
}
