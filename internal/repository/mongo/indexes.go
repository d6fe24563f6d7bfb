package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CredentialCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ClientCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "membershipType", Value: 1}, {Key: "status", Value: 1}}},
		},
		TrainerCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "speciality", Value: 1}, {Key: "status", Value: 1}}},
		},
		ClassCollection: {
			{Keys: bson.D{{Key: "day", Value: 1}}},
		},
		PaymentCollection: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}
}
