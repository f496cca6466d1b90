package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry, built once at load time
type Product struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal
	ImageURL       string
	Category       string
	Rating         decimal.Decimal // 0..5
	Sizes          []string
	Colors         []ColorOption
	Specifications []Specification
	Reviews        []Review
	Featured       bool
}

// ColorOption is a selectable color variant of a product.
// Available is a required boolean; constructors default it to true.
type ColorOption struct {
	ID        string
	Name      string
	Hex       string
	Available bool
}

// Specification is a title/value pair shown on the product detail view
type Specification struct {
	Title string
	Value string
}

// Review is a customer review attached to a product
type Review struct {
	ID              string
	AuthorName      string
	Rating          decimal.Decimal
	Date            string
	Title           string
	Comment         string
	Verified        bool
	HelpfulVotes    int
	NotHelpfulVotes int
}

// LineItemDraft is a pre-commit candidate line item produced by a validated
// selection. It is not yet part of any cart.
type LineItemDraft struct {
	ProductID    string
	Name         string
	UnitPrice    decimal.Decimal
	Quantity     int
	VariantLabel string // "{color}, {size}"
}

// LineItemKey uniquely identifies a cart line item
type LineItemKey struct {
	ProductID    string
	VariantLabel string
}

// CartLineItem is one cart entry. No two line items in a cart share the
// same (ProductID, VariantLabel) key.
type CartLineItem struct {
	ProductID    string
	Name         string
	UnitPrice    decimal.Decimal
	Quantity     int // >= 1
	VariantLabel string
}

// Key returns the merge key for the line item
func (i *CartLineItem) Key() LineItemKey {
	return LineItemKey{ProductID: i.ProductID, VariantLabel: i.VariantLabel}
}

// CartTotals is the derived pricing of a cart.
// Total = Subtotal + Shipping; shipping is zero for an empty cart.
type CartTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// FilterCriteria narrows the catalog. An empty Categories set means no
// category filter.
type FilterCriteria struct {
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Categories map[string]bool
}

// FilterMetadata describes the filter controls for the listing sidebar
type FilterMetadata struct {
	Categories []string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
}

// ShippingForm is the checkout shipping step payload
type ShippingForm struct {
	Email      string
	FullName   string
	Address    string
	Apartment  string // optional
	City       string
	Country    string
	PostalCode string
	Phone      string // optional
}

// PaymentForm is the checkout payment step payload
type PaymentForm struct {
	CardNumber string
	CardName   string
	ExpiryDate string // MM/YY
	CVC        string
}

// Order is a submitted order snapshot: shipping + masked payment + cart
// contents + totals at the moment of submission
type Order struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	Items          []CartLineItem
	Shipping       ShippingForm
	ShippingMethod ShippingMethod
	CardLast4      string
	CardName       string
	Totals         CartTotals
	SubmittedAt    time.Time
}
