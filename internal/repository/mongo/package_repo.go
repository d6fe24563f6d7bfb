package mongo

import (
	"context"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoPackageRepository implements repository.PackageRepository.
type mongoPackageRepository struct {
	docs documents
}

// NewMongoPackageRepository creates a membership package repository backed by MongoDB.
func NewMongoPackageRepository(db *mongo.Database) repository.PackageRepository {
	return &mongoPackageRepository{docs: documents{collection: db.Collection(PackageCollection)}}
}

// Create assigns the id, and the createdAt timestamp when the caller left it unset.
func (r *mongoPackageRepository) Create(ctx context.Context, pkg *domain.Package) (string, error) {
	pkg.ID = primitive.NewObjectID()
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = time.Now().UTC()
	}
	return r.docs.insert(ctx, pkg)
}

func (r *mongoPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	var pkg domain.Package
	if err := r.docs.findByID(ctx, id, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoPackageRepository) GetAll(ctx context.Context) ([]domain.Package, error) {
	packages := make([]domain.Package, 0)
	if err := r.docs.findAll(ctx, bson.M{}, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// Update overwrites the editable fields; createdAt is never rewritten.
func (r *mongoPackageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	return r.docs.setFields(ctx, pkg.ID.Hex(), bson.M{
		"name":        pkg.Name,
		"price":       pkg.Price,
		"duration":    pkg.Duration,
		"description": pkg.Description,
	})
}

func (r *mongoPackageRepository) Delete(ctx context.Context, id string) error {
	return r.docs.deleteByID(ctx, id)
}

func (r *mongoPackageRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}
