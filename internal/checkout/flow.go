package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/cart"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

// Flow is the two-phase checkout state machine for one cart. It starts in
// SHIPPING and reaches PAYMENT only through a validated shipping form.
// The flow never regresses on its own; ReturnToShipping is the one
// explicit backward transition.
type Flow struct {
	ledger   *cart.Ledger
	phase    domain.CheckoutPhase
	shipping *domain.ShippingForm
	method   domain.ShippingMethod
}

// Begin starts a checkout for a cart. An empty cart cannot enter the flow
// at all.
func Begin(ledger *cart.Ledger) (*Flow, error) {
	if ledger.IsEmpty() {
		return nil, &errors.ErrEmptyCart{}
	}
	return &Flow{
		ledger: ledger,
		phase:  domain.PhaseShipping,
		method: domain.ShippingStandard,
	}, nil
}

// Phase returns the current phase
func (f *Flow) Phase() domain.CheckoutPhase {
	return f.phase
}

// ShippingInfo returns the last validated shipping form, or nil
func (f *Flow) ShippingInfo() *domain.ShippingForm {
	return f.shipping
}

// Method returns the selected shipping method
func (f *Flow) Method() domain.ShippingMethod {
	return f.method
}

// Totals prices the cart with the flow's selected shipping method
func (f *Flow) Totals() domain.CartTotals {
	return f.ledger.Totals(f.method)
}

// SubmitShipping validates the shipping form and, on success, stores it
// and advances SHIPPING -> PAYMENT. On failure the phase does not move and
// all field errors are returned together.
func (f *Flow) SubmitShipping(form domain.ShippingForm) error {
	if f.phase != domain.PhaseShipping {
		return &errors.ErrInvalidPhaseTransition{From: f.phase, To: domain.PhasePayment}
	}
	if err := ValidateShipping(form); err != nil {
		return err
	}
	f.shipping = &form
	f.phase = domain.PhasePayment
	return nil
}

// SetShippingMethod selects the delivery speed. Only meaningful once the
// shipping step is done.
func (f *Flow) SetShippingMethod(method domain.ShippingMethod) error {
	if f.phase != domain.PhasePayment {
		return &errors.ErrInvalidPhaseTransition{From: f.phase, To: f.phase}
	}
	if !method.IsValid() {
		return &errors.ErrValidation{
			Message: "unknown shipping method",
			Fields:  map[string]string{"shippingMethod": "must be standard or express"},
		}
	}
	f.method = method
	return nil
}

// ReturnToShipping is the explicit backward transition. The previously
// validated shipping form is retained for editing, and the forward guard
// runs in full again on the next SubmitShipping.
func (f *Flow) ReturnToShipping() error {
	if !f.phase.CanTransitionTo(domain.PhaseShipping) {
		return &errors.ErrInvalidPhaseTransition{From: f.phase, To: domain.PhaseShipping}
	}
	f.phase = domain.PhaseShipping
	return nil
}

// SubmitOrder validates the payment form and, on success, produces the
// order snapshot: shipping + masked card + cart contents + totals at this
// moment. On failure the flow stays in PAYMENT with the field errors
// returned. The card number itself is never stored.
func (f *Flow) SubmitOrder(form domain.PaymentForm) (*domain.Order, error) {
	if f.phase != domain.PhasePayment {
		return nil, &errors.ErrInvalidPhaseTransition{From: f.phase, To: domain.PhasePayment}
	}
	if f.ledger.IsEmpty() {
		return nil, &errors.ErrEmptyCart{}
	}
	if err := ValidatePayment(form); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(form.CardNumber)
	return &domain.Order{
		ID:             uuid.New(),
		Items:          f.ledger.Items(),
		Shipping:       *f.shipping,
		ShippingMethod: f.method,
		CardLast4:      number[len(number)-4:],
		CardName:       strings.TrimSpace(form.CardName),
		Totals:         f.ledger.Totals(f.method),
		SubmittedAt:    time.Now().UTC(),
	}, nil
}
