package service

import "go.mongodb.org/mongo-driver/bson/primitive"

// parseEntityID converts a path id into the store's id type.
func parseEntityID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
