package settings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for admin settings storage
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*AdminSettings, error)
	GetLatest(ctx context.Context) (*AdminSettings, error)
	Upsert(ctx context.Context, settings *AdminSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*AdminSettings, error) {
	var settings AdminSettings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetLatest returns the most recently updated settings row. Notification
// toggles are read from here since submissions carry no admin identity.
func (r *repository) GetLatest(ctx context.Context) (*AdminSettings, error) {
	var settings AdminSettings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) Upsert(ctx context.Context, settings *AdminSettings) error {
	var existing AdminSettings
	err := r.db.WithContext(ctx).First(&existing, "user_id = ?", settings.UserID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.WithContext(ctx).Create(settings).Error
		}
		return err
	}

	settings.ID = existing.ID
	return r.db.WithContext(ctx).Save(settings).Error
}
