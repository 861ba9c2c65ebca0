package model

import (
	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' collection. The document id is the
// principal id. Admin documents are written by the setup flow only.
type AdminModel struct {
	Email string `firestore:"email"`
	Name  string `firestore:"name"`
	Role  string `firestore:"role"`
}

// ToEntity maps the document back to the domain admin.
func (m *AdminModel) ToEntity(id uuid.UUID) *entity.AdminUser {
	return &entity.AdminUser{
		ID:    id,
		Email: m.Email,
		Name:  m.Name,
		Role:  m.Role,
	}
}
