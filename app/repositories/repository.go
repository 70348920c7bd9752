// Package repositories is the MongoDB persistence layer. Each repository
// is a stateless struct working against a named collection through the
// shared connection.
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakr/bazaari/pkg/mongodb"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("repositories: not found")

// ErrDuplicate is returned when a unique index rejects an insert.
var ErrDuplicate = errors.New("repositories: duplicate")

// nextSequence atomically increments and returns the counter for name.
// Used for the integer IDs on users and products.
func nextSequence(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := mongodb.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
