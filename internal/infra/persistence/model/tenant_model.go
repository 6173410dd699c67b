package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. This core reads it, never writes.
type TenantModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                string    `gorm:"type:varchar(100);not null"`
	GoogleSSOEnabled    bool      `gorm:"not null;default:false"`
	GoogleAutoProvision bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// RoleModel mirrors the 'roles' table. Roles are tenant-scoped.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_roles_tenant_name"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_roles_tenant_name"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
