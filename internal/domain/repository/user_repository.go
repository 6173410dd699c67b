// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with roles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email within one tenant partition.
	// A nil tenantID selects the tenant-less partition.
	FindByEmail(ctx context.Context, email string, tenantID *uuid.UUID) (*entity.User, error)

	// FindByGoogleID retrieves the user owning a Google identity. The lookup
	// is global because a Google ID maps to at most one local account.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new user entity. The store's unique constraints on
	// (email, tenant_id) and google_id are the concurrency backstop.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// AssignRole grants a tenant-scoped role to the user. Idempotent.
	AssignRole(ctx context.Context, userID, roleID uuid.UUID) error
}
