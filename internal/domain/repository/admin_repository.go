// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parivartan/internal/domain/entity"
	"parivartan/internal/errors"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when no admin record exists for the given id.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository reads admin records from the external store. Admin
// accounts are created by the setup flow; this service never writes them.
type AdminRepository interface {
	// FindAdminByID retrieves an admin record by principal id.
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
}
