package catalog

import (
	"context"
	"time"

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
	return r.db.AutoMigrate(&Condition{})
}

// List returns the full catalog in a stable order so that scoring ties break
// reproducibly across calls.
func (r *Repository) List(ctx context.Context) ([]Condition, error) {
	var conditions []Condition
	err := r.db.WithContext(ctx).
		Order("created_at, name").
		Find(&conditions).Error
	return conditions, err
}

func (r *Repository) Upsert(ctx context.Context, cond *Condition) error {
	if err := cond.Validate(); err != nil {
		return err
	}
	if cond.ID == "" {
		cond.ID = uuid.New().String()
	}
	cond.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"symptoms", "severity", "affected_systems", "affected_organs",
				"description", "treatment", "updated_at",
			}),
		}).
		Create(cond).Error
}
