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
	"github.com/adityakr/bazaari/pkg/router"
	"github.com/adityakr/bazaari/pkg/testkit"
	"github.com/adityakr/bazaari/pkg/validate"
)

func newBrowseAPI() *router.Router {
	store := catalog.NewStore([]models.Product{
		{ID: 1, Name: "Classic Cotton Kurta", Price: 12.99, Category: "Apparel"},
		{ID: 2, Name: "Linen Summer Shirt", Price: 17.99, Category: "Apparel"},
		{ID: 3, Name: "Cast Iron Tawa", Price: 12.49, Category: "Kitchen"},
		{ID: 4, Name: "Brass Table Lamp", Price: 34.99, Category: "Home"},
	})
	catalogSvc := services.NewCatalogService(nil, store)
	ctrl := NewProductController(catalogSvc, nil, services.NewAIService(), nil)

	r := router.New()
	r.Get("/api/products", ctrl.Index)
	r.Get("/api/products/categories", ctrl.Categories)
	r.Get("/api/products/{id}", ctrl.Show)
	r.Post("/api/generate-description", ctrl.GenerateDescription)
	return r
}

type productListBody struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

func browse(t *testing.T, api *router.Router, target string) productListBody {
	t.Helper()
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := testkit.DecodeEnvelope(t, rec)
	var body productListBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	return body
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestProductsIndexDefaults(t *testing.T) {
	body := browse(t, newBrowseAPI(), "/api/products")
	assert.Equal(t, 4, body.Count)
	assert.Equal(t, "Classic Cotton Kurta", body.Products[0].Name, "catalogue order by default")
}

func TestProductsIndexSearch(t *testing.T) {
	body := browse(t, newBrowseAPI(), "/api/products?search=LINEN")
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Linen Summer Shirt", body.Products[0].Name)
}

func TestProductsIndexCategoryAndSort(t *testing.T) {
	body := browse(t, newBrowseAPI(), "/api/products?category=Apparel&sort=price-desc")
	assert.Equal(t, []string{"Linen Summer Shirt", "Classic Cotton Kurta"}, names(body.Products))
}

func TestProductsIndexUnknownSortFallsBack(t *testing.T) {
	body := browse(t, newBrowseAPI(), "/api/products?sort=sideways")
	assert.Equal(t, 4, body.Count)
	assert.Equal(t, "Classic Cotton Kurta", body.Products[0].Name)
}

func TestProductsCategories(t *testing.T) {
	api := newBrowseAPI()
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	env := testkit.DecodeEnvelope(t, rec)
	var cats []string
	require.NoError(t, json.Unmarshal(env.Data, &cats))
	assert.Equal(t, []string{"All", "Apparel", "Kitchen", "Home"}, cats)
}

func TestProductShow(t *testing.T) {
	api := newBrowseAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDescriptionWithoutKeyIs503(t *testing.T) {
	api := newBrowseAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, testkit.JSONRequest(t, http.MethodPost, "/api/generate-description", map[string]interface{}{
		"productName": "Brass Table Lamp",
		"keywords":    []string{"handmade", "warm"},
	}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGenerateDescriptionRequiresProductName(t *testing.T) {
	api := newBrowseAPI()

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, testkit.JSONRequest(t, http.MethodPost, "/api/generate-description", map[string]interface{}{
		"keywords": []string{"handmade"},
	}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProductInputAllowsFreeProduct(t *testing.T) {
	in := productInput{Name: "Sample Sachet", Price: 0, Category: "Kitchen"}
	errs := validate.Struct(in)
	assert.NotContains(t, errs, "price")
}

func TestProductInputRejectsNegativePrice(t *testing.T) {
	in := productInput{Name: "Sample Sachet", Price: -1, Category: "Kitchen"}
	errs := validate.Struct(in)
	assert.Contains(t, errs, "price")
}
