package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoCredentialRepository implements repository.CredentialRepository.
type mongoCredentialRepository struct {
	docs documents
}

// NewMongoCredentialRepository creates a credential repository backed by MongoDB.
func NewMongoCredentialRepository(db *mongo.Database) repository.CredentialRepository {
	return &mongoCredentialRepository{docs: documents{collection: db.Collection(CredentialCollection)}}
}

// Create inserts a new account. The unique email index turns a clash into ErrDuplicate.
func (r *mongoCredentialRepository) Create(ctx context.Context, cred *domain.Credential) (string, error) {
	if cred.Email == "" || cred.PasswordHash == "" {
		return "", errors.New("credential email and password hash are required")
	}
	cred.ID = primitive.NewObjectID()
	cred.CreatedAt = time.Now().UTC()
	return r.docs.insert(ctx, cred)
}

// GetByEmail retrieves an account by its (normalised) email address.
func (r *mongoCredentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.docs.collection.FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}

// GetByID retrieves an account by uid.
func (r *mongoCredentialRepository) GetByID(ctx context.Context, uid string) (*domain.Credential, error) {
	var cred domain.Credential
	if err := r.docs.findByID(ctx, uid, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// Delete removes an account. Used to roll back a sign-up whose profile write failed.
func (r *mongoCredentialRepository) Delete(ctx context.Context, uid string) error {
	return r.docs.deleteByID(ctx, uid)
}
