// Package migrations lists the database setup steps, mostly indexes.
package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakr/bazaari/pkg/migration"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

// All returns every migration in apply order.
func All() []migration.Migration {
	return []migration.Migration{
		{
			Name: "2025_01_10_users_email_unique",
			Run: func(ctx context.Context) error {
				_, err := mongodb.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				})
				return err
			},
		},
		{
			Name: "2025_01_10_orders_user_date",
			Run: func(ctx context.Context) error {
				_, err := mongodb.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
				})
				return err
			},
		},
		{
			Name: "2025_02_02_reviews_product_date",
			Run: func(ctx context.Context) error {
				_, err := mongodb.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "date", Value: -1}},
				})
				return err
			},
		},
		{
			Name: "2025_02_14_products_category",
			Run: func(ctx context.Context) error {
				_, err := mongodb.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{{Key: "category", Value: 1}},
				})
				return err
			},
		},
	}
}
