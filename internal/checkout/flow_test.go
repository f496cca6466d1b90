package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/cart"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

func cartWithItems(t *testing.T) *cart.Ledger {
	t.Helper()
	l := cart.NewLedger()
	tee, _ := decimal.NewFromString("29.99")
	jeans, _ := decimal.NewFromString("59.99")
	l.AddOrMerge(&domain.LineItemDraft{
		ProductID: "prod-1", Name: "Stylish T-Shirt", UnitPrice: tee, Quantity: 2, VariantLabel: "Blue, M",
	})
	l.AddOrMerge(&domain.LineItemDraft{
		ProductID: "prod-2", Name: "Modern Jeans", UnitPrice: jeans, Quantity: 1, VariantLabel: "Black, 32W",
	})
	return l
}

func TestBeginRejectsEmptyCart(t *testing.T) {
	_, err := Begin(cart.NewLedger())
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	if _, ok := err.(*errors.ErrEmptyCart); !ok {
		t.Fatalf("expected ErrEmptyCart, got %T", err)
	}
}

func TestFlowStartsInShippingPhase(t *testing.T) {
	f, err := Begin(cartWithItems(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Phase() != domain.PhaseShipping {
		t.Errorf("initial phase = %s, want SHIPPING", f.Phase())
	}
	if f.Method() != domain.ShippingStandard {
		t.Errorf("initial method = %s, want standard", f.Method())
	}
}

func TestInvalidShippingBlocksTransition(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	form := validShipping()
	form.Email = "not-an-email"

	err := f.SubmitShipping(form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*errors.ErrValidation)
	if !ok {
		t.Fatalf("expected ErrValidation, got %T", err)
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Errorf("expected email field error, got %v", verr.Fields)
	}
	if f.Phase() != domain.PhaseShipping {
		t.Errorf("phase moved to %s despite failed validation", f.Phase())
	}
}

func TestValidShippingAdvancesToPayment(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Phase() != domain.PhasePayment {
		t.Errorf("phase = %s, want PAYMENT", f.Phase())
	}
	if f.ShippingInfo() == nil || f.ShippingInfo().Email != "jane@example.com" {
		t.Error("validated shipping info not retained")
	}
}

func TestSubmitShippingRejectedInPaymentPhase(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := f.SubmitShipping(validShipping())
	if _, ok := err.(*errors.ErrInvalidPhaseTransition); !ok {
		t.Fatalf("expected ErrInvalidPhaseTransition, got %T", err)
	}
}

func TestSubmitOrderRequiresPaymentPhase(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	_, err := f.SubmitOrder(validPayment())
	if _, ok := err.(*errors.ErrInvalidPhaseTransition); !ok {
		t.Fatalf("expected ErrInvalidPhaseTransition, got %T", err)
	}
}

func TestSubmitOrderInvalidPaymentStaysInPaymentPhase(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form := validPayment()
	form.CardNumber = "1234"
	_, err := f.SubmitOrder(form)
	verr, ok := err.(*errors.ErrValidation)
	if !ok {
		t.Fatalf("expected ErrValidation, got %T", err)
	}
	if _, ok := verr.Fields["cardNumber"]; !ok {
		t.Errorf("expected cardNumber field error, got %v", verr.Fields)
	}
	if f.Phase() != domain.PhasePayment {
		t.Errorf("phase = %s, want PAYMENT after failed submit", f.Phase())
	}
}

func TestSubmitOrderSnapshot(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := f.SubmitOrder(validPayment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 2 {
		t.Errorf("snapshot has %d items, want 2", len(order.Items))
	}
	if got := order.Totals.Total.StringFixed(2); got != "124.97" {
		t.Errorf("order total = %s, want 124.97", got)
	}
	if order.CardLast4 != "4242" {
		t.Errorf("card last4 = %q, want 4242", order.CardLast4)
	}
	if order.Shipping.FullName != "Jane Doe" {
		t.Errorf("shipping name = %q", order.Shipping.FullName)
	}
	if order.SubmittedAt.IsZero() {
		t.Error("submitted-at not set")
	}
}

func TestExpressMethodRepricesCheckoutTotals(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.SetShippingMethod(domain.ShippingExpress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.Totals().Total.StringFixed(2); got != "134.97" {
		t.Errorf("express total = %s, want 134.97", got)
	}
	order, err := f.SubmitOrder(validPayment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := order.Totals.Shipping.StringFixed(2); got != "15.00" {
		t.Errorf("order shipping = %s, want 15.00", got)
	}
}

func TestSetShippingMethodRejectedBeforePayment(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SetShippingMethod(domain.ShippingExpress); err == nil {
		t.Fatal("expected error in shipping phase")
	}
}

func TestSetShippingMethodRejectsUnknown(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := f.SetShippingMethod(domain.ShippingMethod("overnight"))
	if _, ok := err.(*errors.ErrValidation); !ok {
		t.Fatalf("expected ErrValidation, got %T", err)
	}
}

func TestReturnToShippingRerunsGuard(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	if err := f.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.ReturnToShipping(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Phase() != domain.PhaseShipping {
		t.Errorf("phase = %s, want SHIPPING", f.Phase())
	}
	if f.ShippingInfo() == nil {
		t.Error("shipping info dropped on backward transition")
	}

	// the forward guard runs in full again
	bad := validShipping()
	bad.PostalCode = "1"
	if err := f.SubmitShipping(bad); err == nil {
		t.Fatal("expected re-validation to fail")
	}
	if f.Phase() != domain.PhaseShipping {
		t.Errorf("phase = %s, want SHIPPING after failed re-submit", f.Phase())
	}
}

func TestReturnToShippingRejectedInShippingPhase(t *testing.T) {
	f, _ := Begin(cartWithItems(t))
	err := f.ReturnToShipping()
	if _, ok := err.(*errors.ErrInvalidPhaseTransition); !ok {
		t.Fatalf("expected ErrInvalidPhaseTransition, got %T", err)
	}
}
