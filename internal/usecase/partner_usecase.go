package usecase

import (
	"context"

	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"

	"github.com/google/uuid"
)

// PartnerUsecase covers the partner's own profile surface.
type PartnerUsecase interface {
	// GetProfile returns the partner's current record.
	GetProfile(ctx context.Context, partnerID uuid.UUID) (*entity.Partner, error)

	// UpdateProfile applies a field-wise merge of the partner-editable
	// fields; unset fields are left untouched.
	UpdateProfile(ctx context.Context, partnerID uuid.UUID, update *repository.ProfileUpdate) (*entity.Partner, error)
}
