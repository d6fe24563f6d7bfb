package mongo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoClassRepository implements repository.ClassRepository.
type mongoClassRepository struct {
	docs documents
}

// NewMongoClassRepository creates a class repository backed by MongoDB.
func NewMongoClassRepository(db *mongo.Database) repository.ClassRepository {
	return &mongoClassRepository{docs: documents{collection: db.Collection(ClassCollection)}}
}

func (r *mongoClassRepository) Create(ctx context.Context, class *domain.Class) (string, error) {
	class.ID = primitive.NewObjectID()
	return r.docs.insert(ctx, class)
}

func (r *mongoClassRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	var class domain.Class
	if err := r.docs.findByID(ctx, id, &class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *mongoClassRepository) GetAll(ctx context.Context) ([]domain.Class, error) {
	classes := make([]domain.Class, 0)
	if err := r.docs.findAll(ctx, bson.M{}, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *mongoClassRepository) Update(ctx context.Context, class *domain.Class) error {
	return r.docs.setFields(ctx, class.ID.Hex(), bson.M{
		"name":      class.Name,
		"day":       class.Day,
		"startTime": class.StartTime,
		"endTime":   class.EndTime,
	})
}

func (r *mongoClassRepository) Delete(ctx context.Context, id string) error {
	return r.docs.deleteByID(ctx, id)
}

func (r *mongoClassRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}
