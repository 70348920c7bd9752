package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/catalog"
	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/router"
	"github.com/adityakr/bazaari/pkg/session"
	"github.com/adityakr/bazaari/pkg/testkit"
)

func catalogueForTest() *catalog.Store {
	return catalog.NewStore([]models.Product{
		{ID: 1, Name: "Classic Cotton Kurta", Price: 12.99, Category: "Apparel"},
		{ID: 2, Name: "Cast Iron Tawa", Price: 12.49, Category: "Kitchen"},
		{ID: 3, Name: "Brass Table Lamp", Price: 34.99, Category: "Home"},
	})
}

// newCartAPI builds a router with just the cart surface mounted behind the
// session middleware.
func newCartAPI() *router.Router {
	store := catalogueForTest()
	catalogSvc := services.NewCatalogService(nil, store)
	shops := shop.NewManager()
	sessions := session.NewManager(session.NewMemoryStore(), false)
	ctrl := NewCartController(catalogSvc, shops)

	r := router.New()
	r.Use(sessions.Middleware)
	r.Route("/api/cart", func(g *router.Router) {
		g.Get("/", ctrl.Show)
		g.Post("/", ctrl.Add)
		g.Put("/{productId}", ctrl.UpdateQuantity)
		g.Delete("/{productId}", ctrl.Remove)
		g.Delete("/", ctrl.Clear)
	})
	return r
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "test-session"})
	return req
}

type cartBody struct {
	Items     []models.CartLine `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartBody {
	t.Helper()
	env := testkit.DecodeEnvelope(t, rec)
	var body cartBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	return body
}

func TestCartAddAndShow(t *testing.T) {
	api := newCartAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/cart/", map[string]interface{}{
		"productId": 1,
		"quantity":  2,
	})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/cart/", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.ItemCount)
	assert.InDelta(t, 25.98, body.Subtotal, 1e-9)
}

func TestCartAddSameProductTwiceStacks(t *testing.T) {
	api := newCartAPI()

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/cart/", map[string]interface{}{
			"productId": 2,
			"quantity":  1,
		})))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/cart/", nil)))
	body := decodeCart(t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	api := newCartAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/cart/", map[string]interface{}{
		"productId": 404,
	})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	api := newCartAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/cart/", map[string]interface{}{
		"productId": 1, "quantity": 3,
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPut, "/api/cart/1", map[string]interface{}{
		"quantity": 0,
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, rec)
	assert.Empty(t, body.Items)
}

func TestCartIsIsolatedPerSession(t *testing.T) {
	api := newCartAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/cart/", map[string]interface{}{
		"productId": 1,
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	// A different browser session sees an empty cart.
	other := testkit.JSONRequest(t, http.MethodGet, "/api/cart/", nil)
	other.AddCookie(&http.Cookie{Name: session.CookieName, Value: "other-session"})
	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, other)

	body := decodeCart(t, rec)
	assert.Empty(t, body.Items)
}

func TestCartClear(t *testing.T) {
	api := newCartAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(testkit.JSONRequest(t, http.MethodPost, "/api/cart/", map[string]interface{}{
		"productId": 3, "quantity": 2,
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodDelete, "/api/cart/", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, rec)
	assert.Empty(t, body.Items)
	assert.Zero(t, body.Subtotal)
}
