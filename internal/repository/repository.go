package repository

import (
	"context"
	"time"

	"alcyxob/gym-manager/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// IDs are the hex form of the store-assigned ObjectID. Malformed ids behave
// like ids that match no document.

// CredentialRepository is the account side of authentication.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) (string, error) // ErrDuplicate on email clash
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	GetByID(ctx context.Context, uid string) (*domain.Credential, error)
	Delete(ctx context.Context, uid string) error
}

// UserRepository stores profile documents keyed by uid.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, uid string) (*domain.User, error)
}

// ClientRepository defines the interface for interacting with member data.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)
	SetPhotoKey(ctx context.Context, id, key string) error
	Count(ctx context.Context) (int64, error)
}

// TrainerRepository defines the interface for interacting with trainer data.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	GetAll(ctx context.Context) ([]domain.Trainer, error)
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter domain.TrainerFilter) ([]domain.Trainer, error)
	SetSchedule(ctx context.Context, id string, classIDs []string) error
	Count(ctx context.Context) (int64, error)
}

// ClassRepository defines the interface for interacting with class data.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	GetAll(ctx context.Context) ([]domain.Class, error)
	Update(ctx context.Context, class *domain.Class) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// PackageRepository defines the interface for interacting with membership packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	GetAll(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository reads payments; nothing in this service writes them.
type PaymentRepository interface {
	// GetBetween returns payments with from <= timestamp < to.
	GetBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
}
