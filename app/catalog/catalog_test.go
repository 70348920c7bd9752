package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
)

func fixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Zen Garden Kit", Price: 45, Category: "Home"},
		{ID: 2, Name: "apple slicer", Price: 12, Category: "Kitchen"},
		{ID: 3, Name: "Apple Watch Strap", Price: 25, Category: "Electronics"},
		{ID: 4, Name: "Bread Knife", Price: 25, Category: "Kitchen"},
		{ID: 5, Name: "Mixing Bowl", Price: 18, Category: "Kitchen"},
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestDeriveNoFilters(t *testing.T) {
	got := Derive(fixture(), "", CategoryAll, SortDefault)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got), "default view keeps catalogue order")
}

func TestDeriveSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Derive(fixture(), "aPPle", CategoryAll, SortDefault)
	assert.Equal(t, []int{2, 3}, ids(got))

	got = Derive(fixture(), "knife", CategoryAll, SortDefault)
	assert.Equal(t, []int{4}, ids(got))

	got = Derive(fixture(), "xyzzy", CategoryAll, SortDefault)
	assert.Empty(t, got)
}

func TestDeriveCategoryFilter(t *testing.T) {
	got := Derive(fixture(), "", "Kitchen", SortDefault)
	assert.Equal(t, []int{2, 4, 5}, ids(got))

	// "All" is a sentinel, not a category name.
	got = Derive(fixture(), "", CategoryAll, SortDefault)
	assert.Len(t, got, 5)
}

func TestDeriveSearchAndCategoryCompose(t *testing.T) {
	got := Derive(fixture(), "apple", "Kitchen", SortDefault)
	assert.Equal(t, []int{2}, ids(got))
}

func TestDeriveSortPrice(t *testing.T) {
	asc := Derive(fixture(), "", CategoryAll, SortPriceAsc)
	assert.Equal(t, []int{2, 5, 3, 4, 1}, ids(asc), "equal prices keep catalogue order")

	desc := Derive(fixture(), "", CategoryAll, SortPriceDesc)
	assert.Equal(t, []int{1, 3, 4, 5, 2}, ids(desc))
}

func TestDeriveSortName(t *testing.T) {
	asc := Derive(fixture(), "", CategoryAll, SortNameAsc)
	// Locale-aware compare treats case differences loosely, so "apple
	// slicer" sorts with the other A names.
	assert.Equal(t, []int{2, 3, 4, 5, 1}, ids(asc))

	desc := Derive(fixture(), "", CategoryAll, SortNameDesc)
	assert.Equal(t, []int{1, 5, 4, 3, 2}, ids(desc))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	in := fixture()
	_ = Derive(in, "", CategoryAll, SortPriceDesc)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(in))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSort("price-asc"))
	assert.Equal(t, SortNameDesc, ParseSort("name-desc"))
	assert.Equal(t, SortDefault, ParseSort(""))
	assert.Equal(t, SortDefault, ParseSort("bogus"))
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	got := Categories(fixture())
	assert.Equal(t, []string{CategoryAll, "Home", "Kitchen", "Electronics"}, got)
}

func TestCategoriesEmptyCatalogue(t *testing.T) {
	assert.Equal(t, []string{CategoryAll}, Categories(nil))
}

func TestStoreReplaceAndFind(t *testing.T) {
	s := NewStore(fixture())

	p, ok := s.Find(3)
	require.True(t, ok)
	assert.Equal(t, "Apple Watch Strap", p.Name)

	_, ok = s.Find(99)
	assert.False(t, ok)

	s.Replace([]models.Product{{ID: 7, Name: "New", Category: "Misc"}})
	assert.Len(t, s.Products(), 1)
	_, ok = s.Find(3)
	assert.False(t, ok, "replaced catalogue forgets old products")
}

func TestStoreDeriveMatchesPureDerive(t *testing.T) {
	s := NewStore(fixture())
	assert.Equal(t,
		Derive(fixture(), "a", "Kitchen", SortPriceAsc),
		s.Derive("a", "Kitchen", SortPriceAsc),
	)
}
