// Package seeders fills an empty database with starter data.
package seeders

import (
	"context"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/pkg/auth"
	"github.com/adityakr/bazaari/pkg/logger"
)

// Run seeds products and users. Collections that already have data are
// left alone, so running the seeder twice is safe.
func Run(ctx context.Context) error {
	if err := seedProducts(ctx); err != nil {
		return err
	}
	return seedUsers(ctx)
}

func seedProducts(ctx context.Context) error {
	repo := repositories.NewProductRepository()
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("seed: products present, skipping", "count", count)
		return nil
	}

	products := []models.Product{
		{Name: "Classic Cotton Kurta", Price: 1299, Category: "Apparel", Description: "Handloom cotton kurta in indigo, breathable and easy to style.", ImageURL: "/images/kurta.jpg"},
		{Name: "Linen Summer Shirt", Price: 1799, Category: "Apparel", Description: "Relaxed-fit linen shirt for warm afternoons.", ImageURL: "/images/linen-shirt.jpg"},
		{Name: "Leather Mojari", Price: 2199, Category: "Footwear", Description: "Hand-stitched leather mojari with a cushioned sole.", ImageURL: "/images/mojari.jpg"},
		{Name: "Canvas Sneakers", Price: 1599, Category: "Footwear", Description: "Everyday low-top sneakers in off-white canvas.", ImageURL: "/images/sneakers.jpg"},
		{Name: "Brass Table Lamp", Price: 3499, Category: "Home", Description: "Hand-spun brass lamp with a warm matte finish.", ImageURL: "/images/lamp.jpg"},
		{Name: "Block-Print Cushion Cover", Price: 549, Category: "Home", Description: "Jaipur block-printed cushion cover, 16 by 16 inches.", ImageURL: "/images/cushion.jpg"},
		{Name: "Ceramic Chai Set", Price: 1499, Category: "Home", Description: "Six stoneware kulhads with a matching tray.", ImageURL: "/images/chai-set.jpg"},
		{Name: "Steel Water Bottle", Price: 799, Category: "Kitchen", Description: "Vacuum-insulated bottle that keeps chai hot for 12 hours.", ImageURL: "/images/bottle.jpg"},
		{Name: "Cast Iron Tawa", Price: 1249, Category: "Kitchen", Description: "Pre-seasoned cast iron tawa, 28 cm.", ImageURL: "/images/tawa.jpg"},
		{Name: "Wireless Earbuds", Price: 2999, Category: "Electronics", Description: "Compact earbuds with 24-hour battery and quick pairing.", ImageURL: "/images/earbuds.jpg"},
		{Name: "Fitness Band", Price: 2499, Category: "Electronics", Description: "Slim fitness band with heart-rate and sleep tracking.", ImageURL: "/images/band.jpg"},
		{Name: "Jute Tote Bag", Price: 449, Category: "Accessories", Description: "Sturdy jute tote for the daily market run.", ImageURL: "/images/tote.jpg"},
	}

	for _, p := range products {
		if _, err := repo.Create(ctx, p); err != nil {
			return err
		}
	}
	logger.Info("seed: products created", "count", len(products))
	return nil
}

func seedUsers(ctx context.Context) error {
	repo := repositories.NewUserRepository()
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("seed: users present, skipping", "count", count)
		return nil
	}

	verifier := auth.NewVerifier()
	users := []struct {
		name, email, password string
		role                  models.Role
	}{
		{"Admin", "admin@bazaari.local", "admin12345", models.RoleAdmin},
		{"Demo User", "demo@bazaari.local", "demo12345", models.RoleUser},
	}

	for _, u := range users {
		hashed, err := verifier.Hash(u.password)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, models.User{
			Name:     u.name,
			Email:    u.email,
			Password: hashed,
			Role:     u.role,
		}); err != nil {
			return err
		}
	}
	logger.Info("seed: users created", "count", len(users))
	return nil
}
