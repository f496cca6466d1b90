package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

var heroSlides = []SlideDTO{
	{ID: 1, ImageURL: "https://via.placeholder.com/1200x500?text=Summer+Collection", AltText: "Summer Collection Banner"},
	{ID: 2, ImageURL: "https://via.placeholder.com/1200x500?text=New+Arrivals", AltText: "New Arrivals Banner"},
	{ID: 3, ImageURL: "https://via.placeholder.com/1200x500?text=Limited+Time+Offer", AltText: "Limited Time Offer Banner"},
}

type catalogService struct {
	store           *catalog.Store
	defaultPageSize int
	logger          *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *catalog.Store, defaultPageSize int, logger *zap.Logger) *catalogService {
	return &catalogService{store: store, defaultPageSize: defaultPageSize, logger: logger}
}

// ListProducts filters, sorts and paginates the catalog
func (s *catalogService) ListProducts(q ListProductsQuery) (*ProductListResponse, error) {
	criteria := catalog.UnboundedCriteria()
	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, &errors.ErrValidation{Fields: map[string]string{"min_price": "must be a number"}}
		}
		criteria.MinPrice = min
	}
	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, &errors.ErrValidation{Fields: map[string]string{"max_price": "must be a number"}}
		}
		criteria.MaxPrice = max
	}
	if len(q.Categories) > 0 {
		criteria.Categories = make(map[string]bool, len(q.Categories))
		for _, c := range q.Categories {
			criteria.Categories[c] = true
		}
	}

	sortKey := domain.SortRelevance
	if q.Sort != "" {
		sortKey = domain.SortKey(q.Sort)
		if !sortKey.IsValid() {
			return nil, &errors.ErrValidation{Fields: map[string]string{"sort": "unknown sort key"}}
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}

	filtered := catalog.FilterAndSort(s.store.All(), criteria, sortKey)
	pageItems, totalPages := catalog.Paginate(filtered, pageSize, page)

	resp := &ProductListResponse{
		Products:   make([]ProductSummary, 0, len(pageItems)),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: len(filtered),
	}
	for _, p := range pageItems {
		resp.Products = append(resp.Products, toProductSummary(p))
	}
	return resp, nil
}

// GetProduct returns the full detail view of one product
func (s *catalogService) GetProduct(id string) (*ProductDetail, error) {
	p, ok := s.store.GetByID(id)
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	detail := &ProductDetail{
		ProductSummary: toProductSummary(*p),
		Sizes:          p.Sizes,
		Colors:         make([]ColorOptionDTO, 0, len(p.Colors)),
		Specifications: make([]SpecificationDTO, 0, len(p.Specifications)),
		Reviews:        make([]ReviewDTO, 0, len(p.Reviews)),
	}
	for _, c := range p.Colors {
		detail.Colors = append(detail.Colors, ColorOptionDTO{ID: c.ID, Name: c.Name, Hex: c.Hex, Available: c.Available})
	}
	for _, spec := range p.Specifications {
		detail.Specifications = append(detail.Specifications, SpecificationDTO{Title: spec.Title, Value: spec.Value})
	}
	for _, r := range p.Reviews {
		detail.Reviews = append(detail.Reviews, ReviewDTO{
			ID:              r.ID,
			AuthorName:      r.AuthorName,
			Rating:          r.Rating.StringFixed(1),
			Date:            r.Date,
			Title:           r.Title,
			Comment:         r.Comment,
			Verified:        r.Verified,
			HelpfulVotes:    r.HelpfulVotes,
			NotHelpfulVotes: r.NotHelpfulVotes,
		})
	}
	return detail, nil
}

// Home returns the homepage payload: hero slides and featured products
func (s *catalogService) Home() *HomeResponse {
	resp := &HomeResponse{Slides: heroSlides}
	for _, p := range s.store.Featured() {
		resp.Featured = append(resp.Featured, toProductSummary(p))
	}
	return resp
}

// Filters returns the sidebar filter metadata
func (s *catalogService) Filters() FilterMetadataDTO {
	meta := s.store.FilterMetadata()
	return FilterMetadataDTO{
		Categories: meta.Categories,
		MinPrice:   meta.MinPrice.StringFixed(2),
		MaxPrice:   meta.MaxPrice.StringFixed(2),
	}
}

func toProductSummary(p domain.Product) ProductSummary {
	return ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Rating:      p.Rating.StringFixed(1),
	}
}
