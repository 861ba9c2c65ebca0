// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// AdminUser represents a platform administrator with unrestricted access
// to the management screens. Admin accounts are created out-of-band by the
// setup flow and are never mutated by this service.
type AdminUser struct {
	ID    uuid.UUID // The Global Unique Identifier (GUID) for the admin.
	Email string    // The admin's login email.
	Name  string    // The admin's display name.
	Role  string    // Free-form role label, e.g. "superadmin".
}
