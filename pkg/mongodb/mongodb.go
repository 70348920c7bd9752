// Package mongodb owns the MongoDB connection for the storefront.
// Repositories in app/repositories obtain their collections through it.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakr/bazaari/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the MongoDB connection and configures the pool.
// Returns an error instead of calling log.Fatal so the caller can
// shut down gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(config.MongoURI()).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	var err error
	client, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb: ping: %w", err)
	}

	db = client.Database(config.MongoDB())
	return nil
}

// DB returns the connected database. Connect must have been called.
func DB() *mongo.Database { return db }

// Collection returns a handle to the named collection.
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// Disconnect closes the connection. Safe to call when never connected.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
