// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Role is a tenant-scoped permission grouping. Roles never exist in the
// tenant-less partition, which is why tenant-less users carry none.
type Role struct {
	ID        uuid.UUID // The unique ID of the role.
	TenantID  uuid.UUID // The tenant this role belongs to.
	Name      string    // Role name, unique within the tenant.
	IsDefault bool      // Marks the lowest-privilege role assigned on auto-provisioning.
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a role with the given name.
func (rs Roles) Contains(name string) bool {
	for _, r := range rs {
		if r.Name == name {
			return true
		}
	}

	return false
}

// IDs returns the role IDs as strings for JWT compatibility.
func (rs Roles) IDs() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.ID.String()
	}

	return result
}
