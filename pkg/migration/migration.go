// Package migration applies one-shot database setup steps (indexes,
// collection tweaks) exactly once, tracking applied names in the
// migrations collection.
package migration

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

const collection = "migrations"

// Migration is one named setup step.
type Migration struct {
	Name string
	Run  func(ctx context.Context) error
}

type record struct {
	Name      string    `bson:"name"`
	AppliedAt time.Time `bson:"applied_at"`
}

// Apply runs every migration that has not been applied yet, in order.
func Apply(ctx context.Context, migrations []Migration) error {
	applied, err := appliedNames(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Name] {
			continue
		}
		logger.Info("applying migration", "name", m.Name)
		if err := m.Run(ctx); err != nil {
			return err
		}
		_, err := mongodb.Collection(collection).InsertOne(ctx, record{
			Name:      m.Name,
			AppliedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func appliedNames(ctx context.Context) (map[string]bool, error) {
	cur, err := mongodb.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var r record
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		names[r.Name] = true
	}
	return names, cur.Err()
}
