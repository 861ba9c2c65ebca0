package model

import (
	"parivartan/internal/domain/repository"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' collection used by the local
// identity provider. The document id is the lowercased login email.
type CredentialModel struct {
	PrincipalID  string `firestore:"principalId"`
	Email        string `firestore:"email"`
	PasswordHash string `firestore:"passwordHash"`
	IsAdmin      bool   `firestore:"isAdmin"`
}

// CredentialFromEntity maps a credential onto its document shape.
func CredentialFromEntity(c *repository.Credential) *CredentialModel {
	return &CredentialModel{
		PrincipalID:  c.PrincipalID.String(),
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		IsAdmin:      c.IsAdmin,
	}
}

// ToEntity maps the document back to the credential.
func (m *CredentialModel) ToEntity() *repository.Credential {
	principalID, _ := uuid.Parse(m.PrincipalID)

	return &repository.Credential{
		PrincipalID:  principalID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
	}
}
