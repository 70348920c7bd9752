package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/router"
	"github.com/adityakr/bazaari/pkg/session"
	"github.com/adityakr/bazaari/pkg/testkit"
)

func newWishlistAPI() *router.Router {
	catalogSvc := services.NewCatalogService(nil, catalogueForTest())
	shops := shop.NewManager()
	sessions := session.NewManager(session.NewMemoryStore(), false)
	wishlist := NewWishlistController(catalogSvc, shops)
	cart := NewCartController(catalogSvc, shops)

	r := router.New()
	r.Use(sessions.Middleware)
	r.Route("/api/wishlist", func(g *router.Router) {
		g.Get("/", wishlist.Show)
		g.Post("/toggle", wishlist.Toggle)
		g.Post("/move-to-cart", wishlist.MoveToCart)
		g.Delete("/{productId}", wishlist.Remove)
	})
	r.Get("/api/cart/", cart.Show)
	return r
}

type wishlistBody struct {
	Items []models.Product `json:"items"`
	Count int              `json:"count"`
}

func toggle(t *testing.T, api *router.Router, productID int) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/wishlist/toggle", map[string]interface{}{
		"productId": productID,
	})))
	return rec
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	api := newWishlistAPI()

	rec := toggle(t, api, 1)
	require.Equal(t, http.StatusOK, rec.Code)

	env := testkit.DecodeEnvelope(t, rec)
	var body wishlistBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 1, body.Count)

	// Toggling again removes it.
	rec = toggle(t, api, 1)
	require.Equal(t, http.StatusOK, rec.Code)
	env = testkit.DecodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Zero(t, body.Count)
}

func TestWishlistToggleUnknownProduct(t *testing.T) {
	rec := toggle(t, newWishlistAPI(), 999)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistMoveToCart(t *testing.T) {
	api := newWishlistAPI()

	require.Equal(t, http.StatusOK, toggle(t, api, 2).Code)

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/wishlist/move-to-cart", map[string]interface{}{
		"productId": 2,
	})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Wishlist is empty, cart holds the product.
	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/cart/", nil)))
	body := decodeCart(t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Product.ID)
}

func TestWishlistMoveToCartNotOnList(t *testing.T) {
	api := newWishlistAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/wishlist/move-to-cart", map[string]interface{}{
		"productId": 1,
	})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
