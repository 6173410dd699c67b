package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTenantNotFound is returned when a tenant is not found.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository provides read-only tenant lookups. Tenant administration
// is owned by another service; this core only consults SSO policy flags.
type TenantRepository interface {
	// FindByID retrieves a single tenant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
}
