package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/repository"
)

// GormSaveRepository implements repository.Save using GORM over SQLite
type GormSaveRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSaveRepository creates a new GORM-based save repository
func NewGormSaveRepository(db *gorm.DB) *GormSaveRepository {
	return &GormSaveRepository{db: db, now: time.Now}
}

// Load retrieves the payload stored under saveID
func (r *GormSaveRepository) Load(ctx context.Context, saveID string) ([]byte, error) {
	var model SaveModel

	err := r.db.WithContext(ctx).
		Where("save_id = ?", saveID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, saveID)
		}
		return nil, fmt.Errorf(ErrMsgFailedToLoadSave+": %w", saveID, err)
	}

	return []byte(model.Payload), nil
}

// Save inserts or replaces the payload stored under saveID
func (r *GormSaveRepository) Save(ctx context.Context, saveID string, data []byte) error {
	now := r.now()
	model := SaveModel{
		SaveID:    saveID,
		Payload:   string(data),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "save_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertSave+": %w", saveID, err)
	}
	return nil
}

// Delete removes the payload stored under saveID. Deleting a missing save is not an error.
func (r *GormSaveRepository) Delete(ctx context.Context, saveID string) error {
	err := r.db.WithContext(ctx).
		Where("save_id = ?", saveID).
		Delete(&SaveModel{}).Error
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToDeleteSave+": %w", saveID, err)
	}
	return nil
}

// List returns every stored save ordered by id
func (r *GormSaveRepository) List(ctx context.Context) ([]repository.SaveInfo, error) {
	var models []SaveModel
	if err := r.db.WithContext(ctx).Order("save_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}

	saves := make([]repository.SaveInfo, 0, len(models))
	for _, m := range models {
		saves = append(saves, repository.SaveInfo{
			SaveID:    m.SaveID,
			Size:      len(m.Payload),
			UpdatedAt: m.UpdatedAt,
		})
	}
	return saves, nil
}
