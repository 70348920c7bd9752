package services

import (
	"context"

	"github.com/adityakr/bazaari/app/catalog"
	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/logger"
)

// ProductLister is the read surface the catalogue warmer needs.
type ProductLister interface {
	All(ctx context.Context) ([]models.Product, error)
}

// CatalogService keeps the in-memory catalogue store warm from the
// database. Browse queries never hit the database directly; they derive
// views from the store.
type CatalogService struct {
	repo  ProductLister
	store *catalog.Store
}

// NewCatalogService wires the service.
func NewCatalogService(repo ProductLister, store *catalog.Store) *CatalogService {
	return &CatalogService{repo: repo, store: store}
}

// Warm replaces the store contents with the current database state.
// Called at boot and on a schedule.
func (s *CatalogService) Warm(ctx context.Context) error {
	products, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	s.store.Replace(products)
	logger.Info("catalogue warmed", "products", len(products))
	return nil
}

// Store exposes the underlying store for controllers and resolvers.
func (s *CatalogService) Store() *catalog.Store { return s.store }
