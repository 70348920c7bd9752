package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

const ordersCollection = "orders"

// OrderRepository persists finalised orders.
type OrderRepository struct{}

// NewOrderRepository returns an OrderRepository.
func NewOrderRepository() *OrderRepository { return &OrderRepository{} }

// Create inserts a new order document.
func (r *OrderRepository) Create(ctx context.Context, o models.Order) error {
	_, err := mongodb.Collection(ordersCollection).InsertOne(ctx, o)
	return mapErr(err)
}

// Find returns the order with the given ID.
func (r *OrderRepository) Find(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := mongodb.Collection(ordersCollection).
		FindOne(ctx, bson.M{"_id": id}).
		Decode(&o)
	return o, mapErr(err)
}

// ForUser returns a user's orders, newest first.
func (r *OrderRepository) ForUser(ctx context.Context, userID int) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := mongodb.Collection(ordersCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// All returns every order, newest first. Admin listing.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := mongodb.Collection(ordersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SetStatus updates the status of an order.
func (r *OrderRepository) SetStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res, err := mongodb.Collection(ordersCollection).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
