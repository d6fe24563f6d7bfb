package mongo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoClientRepository implements repository.ClientRepository.
type mongoClientRepository struct {
	docs documents
}

// NewMongoClientRepository creates a member repository backed by MongoDB.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{docs: documents{collection: db.Collection(ClientCollection)}}
}

// Create assigns a fresh id and inserts the member.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (string, error) {
	client.ID = primitive.NewObjectID()
	return r.docs.insert(ctx, client)
}

func (r *mongoClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	if err := r.docs.findByID(ctx, id, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	if err := r.docs.findAll(ctx, bson.M{}, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update overwrites the member fields. The photo key is left untouched.
func (r *mongoClientRepository) Update(ctx context.Context, client *domain.Client) error {
	return r.docs.setFields(ctx, client.ID.Hex(), bson.M{
		"name":           client.Name,
		"membershipType": client.MembershipType,
		"status":         client.Status,
		"joinDate":       client.JoinDate,
	})
}

func (r *mongoClientRepository) Delete(ctx context.Context, id string) error {
	return r.docs.deleteByID(ctx, id)
}

// Search matches members on every non-empty filter field.
func (r *mongoClientRepository) Search(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	query := equalityFilter(
		"name", filter.Name,
		"membershipType", filter.MembershipType,
		"status", filter.Status,
	)
	if err := r.docs.findAll(ctx, query, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// SetPhotoKey records the object key of the member photo.
func (r *mongoClientRepository) SetPhotoKey(ctx context.Context, id, key string) error {
	return r.docs.setFields(ctx, id, bson.M{"photoKey": key})
}

func (r *mongoClientRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}
