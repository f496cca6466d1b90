package selection

import (
	"strconv"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

// Selection is the product-detail-page state: the chosen size, color and
// quantity for a single product. It never mutates the cart; a validated
// selection produces a LineItemDraft for the ledger to merge.
type Selection struct {
	product  *domain.Product
	size     string
	colorID  string
	quantity int
}

// New starts a selection for a product with quantity 1 and nothing chosen
func New(product *domain.Product) *Selection {
	return &Selection{product: product, quantity: 1}
}

// ProductID returns the id of the product being configured
func (s *Selection) ProductID() string {
	return s.product.ID
}

// SelectSize records the chosen size
func (s *Selection) SelectSize(size string) {
	s.size = size
}

// SelectColor records the chosen color by id
func (s *Selection) SelectColor(colorID string) {
	s.colorID = colorID
}

// SetQuantity clamps to a minimum of 1; zero and negatives become 1
func (s *Selection) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	s.quantity = n
}

// SetQuantityString parses a raw quantity input. Non-numeric or missing
// input clamps to 1, same as the numeric path.
func (s *Selection) SetQuantityString(raw string) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = 1
	}
	s.SetQuantity(n)
}

// Quantity returns the current quantity
func (s *Selection) Quantity() int {
	return s.quantity
}

// ValidateForAddToCart checks the selection is complete and the chosen
// color is available, returning a draft line item on success. The variant
// label is "{color}, {size}".
func (s *Selection) ValidateForAddToCart() (*domain.LineItemDraft, error) {
	if s.size == "" {
		return nil, &errors.ErrIncompleteSelection{Message: "please select a size"}
	}
	if s.colorID == "" {
		return nil, &errors.ErrIncompleteSelection{Message: "please select a color"}
	}
	color, ok := s.findColor(s.colorID)
	if !ok {
		return nil, &errors.ErrIncompleteSelection{Message: "unknown color option"}
	}
	if !color.Available {
		return nil, &errors.ErrIncompleteSelection{Message: "selected color is unavailable"}
	}

	return &domain.LineItemDraft{
		ProductID:    s.product.ID,
		Name:         s.product.Name,
		UnitPrice:    s.product.Price,
		Quantity:     s.quantity,
		VariantLabel: color.Name + ", " + s.size,
	}, nil
}

func (s *Selection) findColor(id string) (domain.ColorOption, bool) {
	for _, c := range s.product.Colors {
		if c.ID == id {
			return c, true
		}
	}
	return domain.ColorOption{}, false
}
