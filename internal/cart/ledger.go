package cart

import (
	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
)

// Ledger is the cart: line items keyed by (productID, variantLabel), kept
// in insertion order for display. Mutation happens only through the
// operations below, each of which preserves the key-uniqueness invariant.
type Ledger struct {
	items        []*domain.CartLineItem
	index        map[domain.LineItemKey]*domain.CartLineItem
	Instructions string // special instructions for the seller
}

// NewLedger returns an empty cart
func NewLedger() *Ledger {
	return &Ledger{index: make(map[domain.LineItemKey]*domain.CartLineItem)}
}

// AddOrMerge merges a draft into the ledger. A draft whose key matches an
// existing line item increments that item's quantity; otherwise a new line
// item is appended.
func (l *Ledger) AddOrMerge(draft *domain.LineItemDraft) {
	qty := draft.Quantity
	if qty < 1 {
		qty = 1
	}
	key := domain.LineItemKey{ProductID: draft.ProductID, VariantLabel: draft.VariantLabel}
	if existing, ok := l.index[key]; ok {
		existing.Quantity += qty
		return
	}
	item := &domain.CartLineItem{
		ProductID:    draft.ProductID,
		Name:         draft.Name,
		UnitPrice:    draft.UnitPrice,
		Quantity:     qty,
		VariantLabel: draft.VariantLabel,
	}
	l.items = append(l.items, item)
	l.index[key] = item
}

// UpdateQuantity sets a line item's quantity, clamped to a minimum of 1.
// Removal is a separate explicit action; this never deletes. Unknown keys
// are ignored.
func (l *Ledger) UpdateQuantity(key domain.LineItemKey, quantity int) {
	item, ok := l.index[key]
	if !ok {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity
}

// Remove deletes a line item. Removing a key that is not present is a
// no-op, not an error.
func (l *Ledger) Remove(key domain.LineItemKey) {
	if _, ok := l.index[key]; !ok {
		return
	}
	delete(l.index, key)
	for i, item := range l.items {
		if item.Key() == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
}

// Items returns the line items in insertion order
func (l *Ledger) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(l.items))
	for i, item := range l.items {
		out[i] = *item
	}
	return out
}

// IsEmpty reports whether the cart has no line items
func (l *Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

// ItemCount returns the summed quantity across line items, for the nav badge
func (l *Ledger) ItemCount() int {
	n := 0
	for _, item := range l.items {
		n += item.Quantity
	}
	return n
}

// Totals derives subtotal, shipping and total. Shipping is zero for an
// empty cart, otherwise the method's flat fee. Cart and checkout views
// both go through here so the numbers can never diverge.
func (l *Ledger) Totals(method domain.ShippingMethod) domain.CartTotals {
	subtotal := decimal.Zero
	for _, item := range l.items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	shipping := decimal.Zero
	if len(l.items) > 0 {
		shipping = method.Cost()
	}
	return domain.CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
