package firestore

import (
	"context"

	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"
	"parivartan/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// adminRepository implements the repository.AdminRepository interface on
// Firestore. Read-only: admin documents come from the setup flow.
type adminRepository struct {
	client *firestore.Client
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &adminRepository{client: client}
}

// FindAdminByID retrieves an admin record by principal id.
func (repo *adminRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	snap, err := repo.client.Collection(collectionAdmins).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to get admin document")
	}

	var m model.AdminModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode admin document")
	}

	return m.ToEntity(id), nil
}
