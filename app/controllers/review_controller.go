package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/pkg/auth"
	"github.com/adityakr/bazaari/pkg/bind"
	"github.com/adityakr/bazaari/pkg/response"
	"github.com/adityakr/bazaari/pkg/router"
)

// ReviewController serves product reviews.
type ReviewController struct {
	reviews *services.ReviewService
}

// NewReviewController wires the controller.
func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Index lists a product's reviews with the aggregate rating.
func (c *ReviewController) Index(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	reviews, summary, err := c.reviews.ForProduct(r.Context(), productID)
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "", map[string]interface{}{
		"reviews": reviews,
		"summary": summary,
	})
}

type reviewInput struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=3,max=1000"`
}

// Create adds a review by the authenticated user.
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(router.Param(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}

	var in reviewInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	review, err := c.reviews.Create(r.Context(), productID, auth.UserIDFromCtx(r.Context()), in.Rating, in.Comment)
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Product not found.")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Created(w, "Review added.", review)
}
