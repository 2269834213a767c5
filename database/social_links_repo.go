package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techconnect/site-backend/models"
)

type SocialLinksRepo struct {
	db *gorm.DB
}

func NewSocialLinksRepo(db *gorm.DB) *SocialLinksRepo {
	return &SocialLinksRepo{db}
}

// Get returns the single links row, or nil when none has been saved yet.
func (r *SocialLinksRepo) Get(ctx context.Context) (*models.SocialLinks, error) {
	var links models.SocialLinks
	err := r.db.WithContext(ctx).First(&links).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &links, nil
}

// Upsert updates the existing row if one exists, otherwise inserts the first.
func (r *SocialLinksRepo) Upsert(ctx context.Context, links *models.SocialLinks) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	links.UpdatedAt = &now

	if existing != nil {
		links.ID = existing.ID
		return r.db.WithContext(ctx).Save(links).Error
	}

	links.ID = uuid.New()
	return r.db.WithContext(ctx).Create(links).Error
}
