package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/adityakr/bazaari/app/catalog"
	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/pkg/bind"
	"github.com/adityakr/bazaari/pkg/response"
	"github.com/adityakr/bazaari/pkg/router"
	"github.com/adityakr/bazaari/pkg/storage"
)

// ProductController serves the browse surface and the admin catalogue
// management endpoints.
type ProductController struct {
	catalog  *services.CatalogService
	products *repositories.ProductRepository
	ai       *services.AIService
	disk     storage.Disk
}

// NewProductController wires the controller.
func NewProductController(cat *services.CatalogService, products *repositories.ProductRepository, ai *services.AIService, disk storage.Disk) *ProductController {
	return &ProductController{catalog: cat, products: products, ai: ai, disk: disk}
}

// Index lists products filtered and sorted by query parameters:
// ?search= substring, ?category= exact (or "All"), ?sort= one of
// default | price-asc | price-desc | name-asc | name-desc.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	search := bind.Query(r, "search", "")
	category := bind.Query(r, "category", catalog.CategoryAll)
	sort := catalog.ParseSort(bind.Query(r, "sort", ""))

	products := c.catalog.Store().Derive(search, category, sort)
	response.OK(w, "", map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// Categories lists the category filter options, "All" first.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "", c.catalog.Store().Categories())
}

// Show returns one product by ID.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	product, ok := c.catalog.Store().Find(id)
	if !ok {
		response.NotFound(w, "Product not found.")
		return
	}
	response.OK(w, "", product)
}

type generateDescriptionInput struct {
	ProductName string   `json:"productName" validate:"required"`
	Keywords    []string `json:"keywords"`
}

// GenerateDescription proxies to the AI copywriter. Returns 503 when no
// API key is configured.
func (c *ProductController) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var in generateDescriptionInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	description, err := c.ai.GenerateDescription(r.Context(), in.ProductName, in.Keywords)
	if errors.Is(err, services.ErrServiceUnavailable) {
		response.ServiceUnavailable(w, "AI service not available")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "", map[string]string{"description": description})
}

type productInput struct {
	Name        string  `json:"name"        validate:"required,min=2,max=200"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description string  `json:"description" validate:"nullable,max=2000"`
	Category    string  `json:"category"    validate:"required,min=2,max=100"`
	ImageURL    string  `json:"imageUrl"    validate:"nullable,max=500"`
}

// Create adds a product to the catalogue. Admin only.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in productInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Create(r.Context(), models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		response.ServerError(w, err)
		return
	}
	if err := c.catalog.Warm(r.Context()); err != nil {
		response.ServerError(w, err)
		return
	}
	response.Created(w, "Product created.", product)
}

// Update replaces a product. Admin only.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}

	var in productInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product := models.Product{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	}
	if err := c.products.Update(r.Context(), product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w, "Product not found.")
			return
		}
		response.ServerError(w, err)
		return
	}
	if err := c.catalog.Warm(r.Context()); err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Product updated.", product)
}

// Delete removes a product. Admin only.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	if err := c.products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w, "Product not found.")
			return
		}
		response.ServerError(w, err)
		return
	}
	if err := c.catalog.Warm(r.Context()); err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Product deleted.", nil)
}

// UploadImage stores a product image on the configured disk and points
// the product at it. Admin only. Accepts multipart form field "image".
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	if _, err := c.products.Find(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w, "Product not found.")
			return
		}
		response.ServerError(w, err)
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form.")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Missing image file.")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.BadRequest(w, "Unsupported image type.")
		return
	}

	path := fmt.Sprintf("products/%d/%s%s", id, uuid.NewString(), ext)
	if err := c.disk.Put(r.Context(), path, file); err != nil {
		response.ServerError(w, err)
		return
	}

	url := c.disk.URL(path)
	if err := c.products.SetImageURL(r.Context(), id, url); err != nil {
		response.ServerError(w, err)
		return
	}
	if err := c.catalog.Warm(r.Context()); err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Image uploaded.", map[string]string{"imageUrl": url})
}
