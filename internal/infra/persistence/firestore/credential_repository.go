package firestore

import (
	"context"
	"strings"

	"parivartan/internal/domain/repository"
	"parivartan/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// credentialRepository implements the repository.CredentialRepository
// interface on Firestore, for the local identity provider. The document id
// is the lowercased email, which makes uniqueness a create-time property.
type credentialRepository struct {
	client *firestore.Client
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(client *firestore.Client) repository.CredentialRepository {
	return &credentialRepository{client: client}
}

func credentialDocID(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateCredential persists a new credential.
func (repo *credentialRepository) CreateCredential(ctx context.Context, cred *repository.Credential) error {
	_, err := repo.client.Collection(collectionCredentials).
		Doc(credentialDocID(cred.Email)).
		Create(ctx, model.CredentialFromEntity(cred))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrDuplicateCredential
		}

		return errors.Wrap(err, "failed to create credential document")
	}

	return nil
}

// FindCredentialByEmail retrieves a credential by login email.
func (repo *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*repository.Credential, error) {
	snap, err := repo.client.Collection(collectionCredentials).
		Doc(credentialDocID(email)).
		Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to get credential document")
	}

	var m model.CredentialModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode credential document")
	}

	return m.ToEntity(), nil
}
