package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

const reviewsCollection = "reviews"

// ReviewRepository persists product reviews.
type ReviewRepository struct{}

// NewReviewRepository returns a ReviewRepository.
func NewReviewRepository() *ReviewRepository { return &ReviewRepository{} }

// Create inserts a review.
func (r *ReviewRepository) Create(ctx context.Context, rev models.Review) error {
	_, err := mongodb.Collection(reviewsCollection).InsertOne(ctx, rev)
	return mapErr(err)
}

// ForProduct returns a product's reviews, newest first.
func (r *ReviewRepository) ForProduct(ctx context.Context, productID int) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := mongodb.Collection(reviewsCollection).Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating returns the mean rating and review count for a product.
func (r *ReviewRepository) AverageRating(ctx context.Context, productID int) (float64, int, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"product_id": productID}},
		{"$group": bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}},
	}
	cur, err := mongodb.Collection(reviewsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var out struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&out); err != nil {
			return 0, 0, err
		}
	}
	return out.Avg, out.Count, cur.Err()
}
