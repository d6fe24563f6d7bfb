package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Collection names.
const (
	CredentialCollection = "credentials"
	UserCollection       = "users"
	ClientCollection     = "clients"
	TrainerCollection    = "trainers"
	ClassCollection      = "classes"
	PackageCollection    = "packages"
	PaymentCollection    = "payments"
)

// ConnectDB establishes a connection to MongoDB using the provided URI
// and verifies it with a ping against the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes every collection relies on.
// It returns the first failure but still attempts the remaining collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var firstErr error
	for name, models := range indexModels() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
