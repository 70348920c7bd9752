package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adityakr/bazaari/app/models"
)

// ReviewStore is the slice of the review repository the service needs.
type ReviewStore interface {
	Create(ctx context.Context, rev models.Review) error
	ForProduct(ctx context.Context, productID int) ([]models.Review, error)
	AverageRating(ctx context.Context, productID int) (float64, int, error)
}

// ProductFinder looks up single products.
type ProductFinder interface {
	Find(ctx context.Context, id int) (models.Product, error)
}

// ReviewService creates and lists product reviews.
type ReviewService struct {
	reviews  ReviewStore
	products ProductFinder
	users    UserStore
}

// NewReviewService wires the service.
func NewReviewService(reviews ReviewStore, products ProductFinder, users UserStore) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

// Create stores a review for an existing product. The reviewer's display
// name is denormalised onto the review at write time.
func (s *ReviewService) Create(ctx context.Context, productID, userID, rating int, comment string) (models.Review, error) {
	if _, err := s.products.Find(ctx, productID); err != nil {
		return models.Review{}, err
	}
	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   comment,
		Date:      time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// Summary is the aggregate rating of one product.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ForProduct returns a product's reviews with the aggregate summary.
func (s *ReviewService) ForProduct(ctx context.Context, productID int) ([]models.Review, Summary, error) {
	reviews, err := s.reviews.ForProduct(ctx, productID)
	if err != nil {
		return nil, Summary{}, err
	}
	avg, count, err := s.reviews.AverageRating(ctx, productID)
	if err != nil {
		return nil, Summary{}, err
	}
	return reviews, Summary{Average: avg, Count: count}, nil
}
