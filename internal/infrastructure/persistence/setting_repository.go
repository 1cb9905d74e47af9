package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements ledger.SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get returns the setting value, "" when unset
func (r *GormSettingRepository) Get(ctx context.Context, projectID uuid.UUID, key string) (string, error) {
	var setting ledger.ProjectSetting
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND key = ?", projectID, key).
		Take(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", translateError(err)
	}
	return setting.Value, nil
}

// Upsert writes the setting keyed by (project, key)
func (r *GormSettingRepository) Upsert(ctx context.Context, setting *ledger.ProjectSetting) error {
	if setting.UpdatedAt.IsZero() {
		setting.UpdatedAt = time.Now()
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(setting).Error
	return translateError(err)
}
