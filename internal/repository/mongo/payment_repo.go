package mongo

import (
	"context"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPaymentRepository struct {
	docs documents
}

// NewMongoPaymentRepository creates a read-only payment repository.
func NewMongoPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &mongoPaymentRepository{docs: documents{collection: db.Collection(PaymentCollection)}}
}

func (r *mongoPaymentRepository) GetBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	payments := make([]domain.Payment, 0)
	filter := bson.M{"timestamp": bson.M{"$gte": from, "$lt": to}}
	if err := r.docs.findAll(ctx, filter, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
