package mongo

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// documents wraps the single-document operations shared by the entity repositories.
type documents struct {
	collection *mongo.Collection
}

// parseID converts a hex id. A malformed id can never match a document,
// so it is reported as ErrNotFound.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return oid, nil
}

func (d documents) insert(ctx context.Context, doc interface{}) (string, error) {
	result, err := d.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted ID")
	}
	return insertedID.Hex(), nil
}

func (d documents) findByID(ctx context.Context, id string, out interface{}) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	err = d.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// findAll decodes every document matching filter into out, a pointer to a
// non-nil slice.
func (d documents) findAll(ctx context.Context, filter bson.M, out interface{}) error {
	cursor, err := d.collection.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return err
	}
	return cursor.Err()
}

func (d documents) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := d.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// deleteByID removes the document if present. Deleting a missing id is not an error.
func (d documents) deleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = d.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (d documents) count(ctx context.Context) (int64, error) {
	return d.collection.CountDocuments(ctx, bson.M{})
}

// equalityFilter builds an AND of the non-empty field values.
func equalityFilter(pairs ...string) bson.M {
	filter := bson.M{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			filter[pairs[i]] = pairs[i+1]
		}
	}
	return filter
}
