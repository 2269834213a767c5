package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLinks holds the footer/banner link URLs. Single-row table, same
// upsert pattern as SiteSettings.
type SocialLinks struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Instagram string     `json:"instagram" db:"instagram" gorm:"type:text"`
	Linkedin  string     `json:"linkedin" db:"linkedin" gorm:"type:text"`
	Github    string     `json:"github" db:"github" gorm:"type:text"`
	Whatsapp  string     `json:"whatsapp" db:"whatsapp" gorm:"type:text"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"autoUpdateTime:false"`
}

func (SocialLinks) TableName() string {
	return "social_links"
}
