// Package catalog holds the session's immutable product list and derives
// filtered, sorted views of it.
//
// Derive is a pure function: the same products, search term, category and
// sort option always yield the same output slice, and the input is never
// mutated (sorting happens on a copy). That keeps it trivially cacheable and
// safe to call from any goroutine.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/collection"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
)

// ParseSort maps a raw query value to a SortOption, falling back to default
// for anything unrecognised.
func ParseSort(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return SortOption(raw)
	default:
		return SortDefault
	}
}

// Derive filters products by category and case-insensitive name substring,
// then sorts a copy of the result. All sorts are stable: products with equal
// keys keep their original relative order.
func Derive(products []models.Product, search, category string, opt SortOption) []models.Product {
	needle := strings.ToLower(search)

	result := collection.Filter(products, func(p models.Product) bool {
		if category != "" && category != CategoryAll && p.Category != category {
			return false
		}
		return strings.Contains(strings.ToLower(p.Name), needle)
	})

	// Filter always returns a fresh slice, so sorting in place never touches
	// the caller's backing array.
	out := result

	switch opt {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAsc:
		cl := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return cl.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		cl := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return cl.CompareString(out[i].Name, out[j].Name) > 0
		})
	}

	return out
}

// Categories returns {"All"} followed by the distinct categories of products
// in first-seen order.
func Categories(products []models.Product) []string {
	cats := collection.Map(products, func(p models.Product) string { return p.Category })
	return append([]string{CategoryAll}, collection.Unique(cats)...)
}

// ─── Store ────────────────────────────────────────────────────────────────────

// Store is the in-memory catalogue for the running server. The product list
// is immutable once set; Replace swaps the whole slice under a lock (used by
// the scheduled re-warm), so readers never observe a partial update.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewStore creates a Store seeded with products.
func NewStore(products []models.Product) *Store {
	s := &Store{}
	s.Replace(products)
	return s
}

// Products returns the current product list. The slice must be treated as
// read-only; Derive already copies before sorting.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Replace swaps the catalogue for a freshly loaded product list.
func (s *Store) Replace(products []models.Product) {
	next := make([]models.Product, len(products))
	copy(next, products)

	s.mu.Lock()
	s.products = next
	s.mu.Unlock()
}

// Find looks up a product by ID.
func (s *Store) Find(id int) (models.Product, bool) {
	return collection.First(s.Products(), func(p models.Product) bool { return p.ID == id })
}

// Derive runs the query engine over the current catalogue.
func (s *Store) Derive(search, category string, opt SortOption) []models.Product {
	return Derive(s.Products(), search, category, opt)
}

// Categories lists the filter categories for the current catalogue.
func (s *Store) Categories() []string {
	return Categories(s.Products())
}
