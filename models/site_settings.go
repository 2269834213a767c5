package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings holds the company details edited from the admin dashboard and
// read by the public contact page. The table holds at most one row.
type SiteSettings struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	CompanyName  string     `json:"company_name" db:"company_name" gorm:"type:text"`
	CompanyEmail string     `json:"company_email" db:"company_email" gorm:"type:text"`
	CompanyPhone string     `json:"company_phone" db:"company_phone" gorm:"type:text"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"autoUpdateTime:false"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
