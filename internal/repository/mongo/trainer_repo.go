package mongo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTrainerRepository implements repository.TrainerRepository.
type mongoTrainerRepository struct {
	docs documents
}

// NewMongoTrainerRepository creates a trainer repository backed by MongoDB.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{docs: documents{collection: db.Collection(TrainerCollection)}}
}

func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (string, error) {
	trainer.ID = primitive.NewObjectID()
	return r.docs.insert(ctx, trainer)
}

func (r *mongoTrainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	if err := r.docs.findByID(ctx, id, &trainer); err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *mongoTrainerRepository) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	trainers := make([]domain.Trainer, 0)
	if err := r.docs.findAll(ctx, bson.M{}, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// Update overwrites the trainer's profile fields; the class schedule is
// managed separately through SetSchedule.
func (r *mongoTrainerRepository) Update(ctx context.Context, trainer *domain.Trainer) error {
	return r.docs.setFields(ctx, trainer.ID.Hex(), bson.M{
		"name":            trainer.Name,
		"speciality":      trainer.Speciality,
		"assignedClasses": trainer.AssignedClasses,
		"contactInfo":     trainer.ContactInfo,
		"status":          trainer.Status,
	})
}

func (r *mongoTrainerRepository) Delete(ctx context.Context, id string) error {
	return r.docs.deleteByID(ctx, id)
}

func (r *mongoTrainerRepository) Search(ctx context.Context, filter domain.TrainerFilter) ([]domain.Trainer, error) {
	trainers := make([]domain.Trainer, 0)
	query := equalityFilter(
		"name", filter.Name,
		"speciality", filter.Speciality,
		"status", filter.Status,
	)
	if err := r.docs.findAll(ctx, query, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// SetSchedule replaces the list of class ids the trainer teaches.
func (r *mongoTrainerRepository) SetSchedule(ctx context.Context, id string, classIDs []string) error {
	return r.docs.setFields(ctx, id, bson.M{"classSchedule": classIDs})
}

func (r *mongoTrainerRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}
