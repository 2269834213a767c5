package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techconnect/site-backend/models"
)

type SiteSettingsRepo struct {
	db *gorm.DB
}

func NewSiteSettingsRepo(db *gorm.DB) *SiteSettingsRepo {
	return &SiteSettingsRepo{db}
}

// Get returns the single settings row, or nil when none has been saved yet.
func (r *SiteSettingsRepo) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert updates the existing row if one exists, otherwise inserts the first.
func (r *SiteSettingsRepo) Upsert(ctx context.Context, settings *models.SiteSettings) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	settings.UpdatedAt = &now

	if existing != nil {
		settings.ID = existing.ID
		return r.db.WithContext(ctx).Save(settings).Error
	}

	settings.ID = uuid.New()
	return r.db.WithContext(ctx).Create(settings).Error
}
