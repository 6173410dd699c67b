package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSessionModel mirrors the 'refresh_sessions' table. Rows are nodes of
// a rotation chain; FamilyID groups every session descended from one login.
type RefreshSessionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash    string    `gorm:"type:varchar(255);unique;not null"`
	FamilyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt    time.Time `gorm:"not null"`
	RevokedAt    *time.Time
	ReplacedByID *uuid.UUID `gorm:"type:uuid"`
	IPAddress    string     `gorm:"type:varchar(45)"`
	UserAgent    string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshSessionModel) TableName() string {
	return "refresh_sessions"
}
