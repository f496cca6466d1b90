package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository/memory"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/sched"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

func testSession(t *testing.T, repos *repository.Repositories) *repository.Session {
	t.Helper()
	sess, err := repos.Session.Create(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func fillCart(t *testing.T, sess *repository.Session, carts *cartService) {
	t.Helper()
	if err := carts.UpdateSelection(sess, "prod-1", SelectionRequest{Size: "M", ColorID: "c1", Quantity: "2"}); err != nil {
		t.Fatalf("update selection: %v", err)
	}
	if _, err := carts.AddToCart(sess, "prod-1"); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := carts.UpdateSelection(sess, "prod-2", SelectionRequest{Size: "32W", ColorID: "c1", Quantity: "1"}); err != nil {
		t.Fatalf("update selection: %v", err)
	}
	if _, err := carts.AddToCart(sess, "prod-2"); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
}

func validShippingRequest() ShippingRequest {
	return ShippingRequest{
		Email:      "jane@example.com",
		FullName:   "Jane Doe",
		Address:    "123 Main St",
		City:       "Anytown",
		Country:    "USA",
		PostalCode: "12345",
	}
}

func validPaymentRequest() PaymentRequest {
	return PaymentRequest{
		CardNumber: "4242424242424242",
		CardName:   "Jane Doe",
		ExpiryDate: "04/27",
		CVC:        "123",
	}
}

func TestEndToEndCheckout(t *testing.T) {
	logger := zap.NewNop()
	store := catalog.Seed()
	repos := memory.NewRepositories(logger)
	carts := NewCartService(store, logger)
	manual := sched.NewManual()
	checkouts := NewCheckoutService(repos, manual, 1500*time.Millisecond, logger)

	sess := testSession(t, repos)
	fillCart(t, sess, carts)

	cartView := carts.GetCart(sess)
	if cartView.Totals.Subtotal != "119.97" || cartView.Totals.Total != "124.97" {
		t.Fatalf("cart totals = %+v", cartView.Totals)
	}

	state, err := checkouts.Begin(sess)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if state.Phase != "SHIPPING" {
		t.Fatalf("phase = %s, want SHIPPING", state.Phase)
	}
	// checkout and cart views price shipping identically
	if state.Totals != cartView.Totals {
		t.Fatalf("checkout totals %+v diverge from cart totals %+v", state.Totals, cartView.Totals)
	}

	state, err = checkouts.SubmitShipping(sess, validShippingRequest())
	if err != nil {
		t.Fatalf("submit shipping: %v", err)
	}
	if state.Phase != "PAYMENT" {
		t.Fatalf("phase = %s, want PAYMENT", state.Phase)
	}

	type result struct {
		order *OrderResponse
		err   error
	}
	results := make(chan result, 1)
	go func() {
		order, err := checkouts.SubmitOrder(context.Background(), sess, validPaymentRequest())
		results <- result{order, err}
	}()

	// the confirmation only lands once virtual time passes the delay
	select {
	case r := <-results:
		t.Fatalf("order completed before delay elapsed: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}
	manual.Advance(1500 * time.Millisecond)

	r := <-results
	if r.err != nil {
		t.Fatalf("submit order: %v", r.err)
	}
	if r.order.Totals.Total != "124.97" {
		t.Errorf("order total = %s, want 124.97", r.order.Totals.Total)
	}
	if r.order.CardLast4 != "4242" {
		t.Errorf("card last4 = %s", r.order.CardLast4)
	}

	// cart and flow reset after submission
	if got := carts.GetCart(sess).ItemCount; got != 0 {
		t.Errorf("cart item count after order = %d, want 0", got)
	}
	if sess.Checkout != nil {
		t.Error("checkout flow not reset after order")
	}

	fetched, err := checkouts.GetOrder(context.Background(), sess, r.order.OrderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if fetched.OrderID != r.order.OrderID {
		t.Errorf("fetched order id %s != %s", fetched.OrderID, r.order.OrderID)
	}
}

func TestBeginWithEmptyCart(t *testing.T) {
	logger := zap.NewNop()
	repos := memory.NewRepositories(logger)
	checkouts := NewCheckoutService(repos, sched.NewManual(), 0, logger)

	sess := testSession(t, repos)
	_, err := checkouts.Begin(sess)
	if _, ok := err.(*errors.ErrEmptyCart); !ok {
		t.Fatalf("expected ErrEmptyCart, got %T", err)
	}
}

func TestSubmitOrderCancelledByContext(t *testing.T) {
	logger := zap.NewNop()
	store := catalog.Seed()
	repos := memory.NewRepositories(logger)
	carts := NewCartService(store, logger)
	manual := sched.NewManual()
	checkouts := NewCheckoutService(repos, manual, time.Second, logger)

	sess := testSession(t, repos)
	fillCart(t, sess, carts)
	if _, err := checkouts.Begin(sess); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := checkouts.SubmitShipping(sess, validShippingRequest()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := checkouts.SubmitOrder(ctx, sess, validPaymentRequest())
		errs <- err
	}()
	cancel()
	if err := <-errs; err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// cancelled submission leaves the cart intact
	if got := carts.GetCart(sess).ItemCount; got != 3 {
		t.Errorf("cart item count after cancel = %d, want 3", got)
	}

	// order never lands even if time advances later
	manual.Advance(2 * time.Second)
	orders, err := repos.Order.ListBySessionID(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no stored orders after cancel, got %d", len(orders))
	}
}

func TestCheckoutStateRequiresBegin(t *testing.T) {
	logger := zap.NewNop()
	repos := memory.NewRepositories(logger)
	checkouts := NewCheckoutService(repos, sched.NewManual(), 0, logger)
	sess := testSession(t, repos)
	_, err := checkouts.State(sess)
	if _, ok := err.(*errors.ErrNotFound); !ok {
		t.Fatalf("expected ErrNotFound, got %T", err)
	}
}

func TestGetOrderScopedToSession(t *testing.T) {
	logger := zap.NewNop()
	store := catalog.Seed()
	repos := memory.NewRepositories(logger)
	carts := NewCartService(store, logger)
	checkouts := NewCheckoutService(repos, sched.Real{}, 0, logger)

	sess := testSession(t, repos)
	fillCart(t, sess, carts)
	if _, err := checkouts.Begin(sess); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := checkouts.SubmitShipping(sess, validShippingRequest()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}
	order, err := checkouts.SubmitOrder(context.Background(), sess, validPaymentRequest())
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}

	other := testSession(t, repos)
	if _, err := checkouts.GetOrder(context.Background(), other, order.OrderID); err == nil {
		t.Fatal("expected order lookup from another session to fail")
	}
}
