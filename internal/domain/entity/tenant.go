package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an organization scope. The identity core only reads tenants;
// tenant administration lives elsewhere.
type Tenant struct {
	ID                  uuid.UUID // The unique ID of the tenant.
	Name                string    // Human-readable organization name.
	GoogleSSOEnabled    bool      // Whether Google Sign-In is allowed for this tenant at all.
	GoogleAutoProvision bool      // Whether an unknown Google identity may create a new user here.
	CreatedAt           time.Time // Timestamp of when the tenant was created.
	UpdatedAt           time.Time // Timestamp of the last modification.
}
