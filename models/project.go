package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents one portfolio entry. Timestamps are always supplied by
// the application, never by gorm's auto-tracking, so updated_at stays null on
// records that were never edited.
type Project struct {
	ID           uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string         `json:"description" db:"description" gorm:"type:text"`
	Technologies TechnologyList `json:"technologies" db:"technologies" gorm:"type:jsonb"`
	GithubURL    *string        `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	LiveURL      *string        `json:"live_url,omitempty" db:"live_url" gorm:"type:text"`
	ImageURL     *string        `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty" db:"updated_at" gorm:"autoUpdateTime:false"`

	// Category is derived from Technologies on every fetch; it is never stored.
	Category string `json:"category,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
