package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when a role lookup matches nothing.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository provides read-only role lookups for token issuance and
// auto-provisioning. Role administration is out of scope for this core.
type RoleRepository interface {
	// FindByTenantAndName retrieves a role by its tenant-scoped name.
	FindByTenantAndName(ctx context.Context, tenantID uuid.UUID, name string) (*entity.Role, error)

	// FindDefaultRole retrieves the tenant's lowest-privilege role, assigned
	// to users created through OAuth auto-provisioning.
	FindDefaultRole(ctx context.Context, tenantID uuid.UUID) (*entity.Role, error)
}
