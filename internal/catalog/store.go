package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
)

// Store holds the immutable product collection and answers listing queries.
// All operations are pure functions of the store contents and their inputs.
type Store struct {
	products []domain.Product
	byID     map[string]*domain.Product
}

// NewStore builds a store from a fixed product collection, preserving
// catalog order (the "relevance" order).
func NewStore(products []domain.Product) *Store {
	s := &Store{
		products: products,
		byID:     make(map[string]*domain.Product, len(products)),
	}
	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	return s
}

// All returns the catalog in relevance order
func (s *Store) All() []domain.Product {
	return s.products
}

// GetByID returns the product with the given id, or false if absent
func (s *Store) GetByID(id string) (*domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Featured returns the homepage's featured subset, in catalog order
func (s *Store) Featured() []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// FilterMetadata returns the category list and global price bounds that
// drive the listing sidebar
func (s *Store) FilterMetadata() domain.FilterMetadata {
	meta := domain.FilterMetadata{}
	seen := make(map[string]bool)
	for i, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			meta.Categories = append(meta.Categories, p.Category)
		}
		if i == 0 {
			meta.MinPrice = p.Price
			meta.MaxPrice = p.Price
			continue
		}
		if p.Price.LessThan(meta.MinPrice) {
			meta.MinPrice = p.Price
		}
		if p.Price.GreaterThan(meta.MaxPrice) {
			meta.MaxPrice = p.Price
		}
	}
	sort.Strings(meta.Categories)
	return meta
}

// FilterAndSort returns the products matching criteria, ordered by sortKey.
// A product passes iff its price is within [MinPrice, MaxPrice] and either
// the category set is empty or contains its category. Sorting is stable:
// ties keep their relative catalog order, and "relevance" leaves the input
// order untouched.
func FilterAndSort(products []domain.Product, criteria domain.FilterCriteria, sortKey domain.SortKey) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Price.LessThan(criteria.MinPrice) || p.Price.GreaterThan(criteria.MaxPrice) {
			continue
		}
		if len(criteria.Categories) > 0 && !criteria.Categories[p.Category] {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortKey {
	case domain.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case domain.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case domain.SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}
	// relevance: input order unchanged

	return filtered
}

// Paginate slices items into 1-indexed pages of pageSize. A page beyond
// range yields an empty page, not an error.
func Paginate(items []domain.Product, pageSize, page int) ([]domain.Product, int) {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 || page > totalPages {
		return []domain.Product{}, totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// UnboundedCriteria matches every product
func UnboundedCriteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		MinPrice: decimal.Zero,
		MaxPrice: decimal.NewFromInt(1000),
	}
}
