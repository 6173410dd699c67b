package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
//
// Email uniqueness is partitioned by tenant, including the tenant-less
// partition. The uniqueIndex tag here only covers rows with a tenant; NULL
// tenant_id values compare distinct, so the tenant-less scope is enforced by
// the COALESCE expression index idx_users_email_tenant in
// migrations/0001_init.up.sql. GoogleID is globally unique, which is the
// store-level backstop against concurrent link races.
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email_tenant"`
	Name            string     `gorm:"type:varchar(100)"`
	PasswordHash    string     `gorm:"type:varchar(255)"`
	TenantID        *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_users_email_tenant;index"`
	GoogleID        *string    `gorm:"type:varchar(255);uniqueIndex"`
	GoogleLinkedAt  *time.Time
	EmailVerified   bool `gorm:"not null;default:false"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	Tenant          *TenantModel          `gorm:"foreignKey:TenantID"`
	Roles           []*RoleModel          `gorm:"many2many:user_roles"`
	RefreshSessions []RefreshSessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
