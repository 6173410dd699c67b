// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. A user either belongs to exactly one
// tenant or is tenant-less (TenantID == nil) until it joins an organization.
type User struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email           string     // Login identifier, unique within its tenant partition (including the tenant-less one).
	Name            string     // The user's display name.
	PasswordHash    string     // Bcrypt hash of the password. Empty for OAuth-only accounts.
	TenantID        *uuid.UUID // Owning tenant. Nil for tenant-less (global) accounts.
	GoogleID        *string    // Google 'sub' claim. Globally unique when set.
	GoogleLinkedAt  *time.Time // When the Google identity was linked.
	EmailVerified   bool       // Whether ownership of Email has been proven.
	EmailVerifiedAt *time.Time // When the email was verified.
	Roles           Roles      // Tenant-scoped roles. Always empty for tenant-less users.
	CreatedAt       time.Time  // Timestamp of when this user account was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this user's data.
}

// AuthMethod enumerates the ways an account can authenticate.
type AuthMethod string

const (
	// AuthMethodPassword indicates email/password login.
	AuthMethodPassword AuthMethod = "password"
	// AuthMethodGoogle indicates Google Sign-In.
	AuthMethodGoogle AuthMethod = "google"
)

// String returns the string representation of the AuthMethod.
func (m AuthMethod) String() string {
	return string(m)
}

// AuthMethods derives the set of usable authentication methods from the
// credential fields. An active account always has at least one; the unlink
// and set-password flows are responsible for keeping it that way.
func (u *User) AuthMethods() []AuthMethod {
	methods := make([]AuthMethod, 0, 2)
	if u.PasswordHash != "" {
		methods = append(methods, AuthMethodPassword)
	}
	if u.GoogleID != nil && *u.GoogleID != "" {
		methods = append(methods, AuthMethodGoogle)
	}

	return methods
}

// HasAuthMethod reports whether the account can authenticate with the given method.
func (u *User) HasAuthMethod(method AuthMethod) bool {
	for _, m := range u.AuthMethods() {
		if m == method {
			return true
		}
	}

	return false
}

// InTenant reports whether the user belongs to the given tenant partition.
// A nil tenantID selects the tenant-less partition.
func (u *User) InTenant(tenantID *uuid.UUID) bool {
	if u.TenantID == nil && tenantID == nil {
		return true
	}
	if u.TenantID == nil || tenantID == nil {
		return false
	}

	return *u.TenantID == *tenantID
}

// MarkEmailVerified records email-ownership proof.
func (u *User) MarkEmailVerified(now time.Time) {
	u.EmailVerified = true
	u.EmailVerifiedAt = &now
}

// LinkGoogle attaches a Google identity to the account. Sign-in through
// Google is treated as email-ownership proof.
func (u *User) LinkGoogle(googleID string, now time.Time) {
	u.GoogleID = &googleID
	u.GoogleLinkedAt = &now
	u.MarkEmailVerified(now)
}

// UnlinkGoogle removes the Google identity from the account.
func (u *User) UnlinkGoogle() {
	u.GoogleID = nil
	u.GoogleLinkedAt = nil
}
