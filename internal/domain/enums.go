package domain

import "github.com/shopspring/decimal"

// CheckoutPhase represents a named state in the checkout state machine
type CheckoutPhase string

const (
	// SHIPPING - collecting and validating shipping information (initial)
	PhaseShipping CheckoutPhase = "SHIPPING"
	// PAYMENT - collecting payment details; order submission happens here
	PhasePayment CheckoutPhase = "PAYMENT"
)

// IsValid checks if the checkout phase is valid
func (p CheckoutPhase) IsValid() bool {
	switch p {
	case PhaseShipping, PhasePayment:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a phase transition is valid.
// SHIPPING -> PAYMENT requires a validated shipping form (enforced by the
// flow, not here). PAYMENT -> SHIPPING is the explicit "back to shipping"
// affordance; it never happens automatically.
func (p CheckoutPhase) CanTransitionTo(next CheckoutPhase) bool {
	switch p {
	case PhaseShipping:
		return next == PhasePayment
	case PhasePayment:
		return next == PhaseShipping
	default:
		return false
	}
}

// SortKey orders catalog listings
type SortKey string

const (
	// Relevance keeps the catalog's input order
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
)

// IsValid checks if the sort key is one the listing supports
func (k SortKey) IsValid() bool {
	switch k {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	default:
		return false
	}
}

// ShippingMethod selects the delivery speed during checkout
type ShippingMethod string

const (
	// Standard - 3-5 business days
	ShippingStandard ShippingMethod = "standard"
	// Express - 1-2 business days
	ShippingExpress ShippingMethod = "express"
)

// IsValid checks if the shipping method is valid
func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingStandard, ShippingExpress:
		return true
	default:
		return false
	}
}

// Cost returns the flat fee for the method. This is the single source of
// truth for shipping pricing; cart and checkout views must both use it.
func (m ShippingMethod) Cost() decimal.Decimal {
	switch m {
	case ShippingExpress:
		return decimal.NewFromFloat(15.00)
	default:
		return decimal.NewFromFloat(5.00)
	}
}
