package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

const productsCollection = "products"

// ProductRepository persists products.
type ProductRepository struct{}

// NewProductRepository returns a ProductRepository.
func NewProductRepository() *ProductRepository { return &ProductRepository{} }

// All returns every product ordered by ID.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := mongodb.Collection(productsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Find returns the product with the given ID.
func (r *ProductRepository) Find(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := mongodb.Collection(productsCollection).
		FindOne(ctx, bson.M{"_id": id}).
		Decode(&p)
	return p, mapErr(err)
}

// Create inserts a new product, assigning the next integer ID.
func (r *ProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	id, err := nextSequence(ctx, productsCollection)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = id
	if _, err := mongodb.Collection(productsCollection).InsertOne(ctx, p); err != nil {
		return models.Product{}, mapErr(err)
	}
	return p, nil
}

// Update replaces the stored product.
func (r *ProductRepository) Update(ctx context.Context, p models.Product) error {
	res, err := mongodb.Collection(productsCollection).
		ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetImageURL updates only the image URL of a product.
func (r *ProductRepository) SetImageURL(ctx context.Context, id int, url string) error {
	res, err := mongodb.Collection(productsCollection).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"image_url": url}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	res, err := mongodb.Collection(productsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return mongodb.Collection(productsCollection).CountDocuments(ctx, bson.M{})
}
