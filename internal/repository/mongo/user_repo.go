package mongo

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUserRepository stores profiles with the uid string as _id.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a profile repository backed by MongoDB.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{collection: db.Collection(UserCollection)}
}

// Create inserts the profile document for a freshly created account.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.UID == "" {
		return errors.New("user uid is required")
	}
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

// GetByID retrieves a profile by uid.
func (r *mongoUserRepository) GetByID(ctx context.Context, uid string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
