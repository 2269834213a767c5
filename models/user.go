package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin dashboard account.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name         string     `json:"name" db:"name" gorm:"type:text"`
	Email        string     `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string     `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"autoUpdateTime:false"`
}

func (User) TableName() string {
	return "users"
}
