package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/selection"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

type cartService struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(store *catalog.Store, logger *zap.Logger) *cartService {
	return &cartService{store: store, logger: logger}
}

// UpdateSelection records the detail-page choices for a product in this
// session. The cart is untouched until AddToCart.
func (s *cartService) UpdateSelection(sess *repository.Session, productID string, req SelectionRequest) error {
	product, ok := s.store.GetByID(productID)
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	sel, ok := sess.Selections[productID]
	if !ok {
		sel = selection.New(product)
		sess.Selections[productID] = sel
	}
	if req.Size != "" {
		sel.SelectSize(req.Size)
	}
	if req.ColorID != "" {
		sel.SelectColor(req.ColorID)
	}
	if req.Quantity != "" {
		sel.SetQuantityString(req.Quantity)
	}
	return nil
}

// AddToCart validates the session's selection for the product and merges
// the resulting draft into the cart ledger.
func (s *cartService) AddToCart(sess *repository.Session, productID string) (*CartResponse, error) {
	if _, ok := s.store.GetByID(productID); !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	sel, ok := sess.Selections[productID]
	if !ok {
		return nil, &errors.ErrIncompleteSelection{Message: "please select a size and color"}
	}
	draft, err := sel.ValidateForAddToCart()
	if err != nil {
		return nil, err
	}
	sess.Cart.AddOrMerge(draft)
	s.logger.Info("item added to cart",
		zap.String("session_id", sess.ID.String()),
		zap.String("product_id", draft.ProductID),
		zap.String("variant", draft.VariantLabel),
		zap.Int("quantity", draft.Quantity),
	)
	return s.GetCart(sess), nil
}

// GetCart returns the cart view with totals priced at the standard flat fee
func (s *cartService) GetCart(sess *repository.Session) *CartResponse {
	return buildCartResponse(sess)
}

// UpdateQuantity clamps to a minimum of 1; removal stays a separate action
func (s *cartService) UpdateQuantity(sess *repository.Session, req UpdateQuantityRequest) *CartResponse {
	key := domain.LineItemKey{ProductID: req.ProductID, VariantLabel: req.VariantLabel}
	sess.Cart.UpdateQuantity(key, req.Quantity)
	return buildCartResponse(sess)
}

// RemoveItem deletes a line item; unknown keys are a no-op
func (s *cartService) RemoveItem(sess *repository.Session, req RemoveItemRequest) *CartResponse {
	key := domain.LineItemKey{ProductID: req.ProductID, VariantLabel: req.VariantLabel}
	sess.Cart.Remove(key)
	s.logger.Info("item removed from cart",
		zap.String("session_id", sess.ID.String()),
		zap.String("product_id", req.ProductID),
	)
	return buildCartResponse(sess)
}

// SetInstructions stores the special instructions note on the cart
func (s *cartService) SetInstructions(sess *repository.Session, instructions string) *CartResponse {
	sess.Cart.Instructions = instructions
	return buildCartResponse(sess)
}

func buildCartResponse(sess *repository.Session) *CartResponse {
	totals := sess.Cart.Totals(domain.ShippingStandard)
	resp := &CartResponse{
		Items:        make([]CartItemDTO, 0),
		ItemCount:    sess.Cart.ItemCount(),
		Instructions: sess.Cart.Instructions,
		Totals:       toTotalsDTO(totals),
	}
	for _, item := range sess.Cart.Items() {
		resp.Items = append(resp.Items, toCartItemDTO(item))
	}
	return resp
}

func toCartItemDTO(item domain.CartLineItem) CartItemDTO {
	return CartItemDTO{
		ProductID:    item.ProductID,
		Name:         item.Name,
		UnitPrice:    item.UnitPrice.StringFixed(2),
		Quantity:     item.Quantity,
		VariantLabel: item.VariantLabel,
		LineTotal:    item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
	}
}

func toTotalsDTO(t domain.CartTotals) TotalsDTO {
	return TotalsDTO{
		Subtotal: t.Subtotal.StringFixed(2),
		Shipping: t.Shipping.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}
