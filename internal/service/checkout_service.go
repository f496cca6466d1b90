package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/cart"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/checkout"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/sched"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

type checkoutService struct {
	repos       *repository.Repositories
	scheduler   sched.Scheduler
	submitDelay time.Duration
	logger      *zap.Logger
}

// NewCheckoutService creates a new checkout service. submitDelay is the
// simulated order-processing delay before the confirmation signal.
func NewCheckoutService(repos *repository.Repositories, scheduler sched.Scheduler, submitDelay time.Duration, logger *zap.Logger) *checkoutService {
	return &checkoutService{
		repos:       repos,
		scheduler:   scheduler,
		submitDelay: submitDelay,
		logger:      logger,
	}
}

// Begin starts (or restarts) a checkout flow for the session's cart.
// An empty cart cannot enter checkout.
func (s *checkoutService) Begin(sess *repository.Session) (*CheckoutStateResponse, error) {
	flow, err := checkout.Begin(sess.Cart)
	if err != nil {
		return nil, err
	}
	sess.Checkout = flow
	s.logger.Info("checkout started", zap.String("session_id", sess.ID.String()))
	return s.state(flow), nil
}

// State returns the current checkout view
func (s *checkoutService) State(sess *repository.Session) (*CheckoutStateResponse, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	return s.state(flow), nil
}

// SubmitShipping runs the shipping guard; success advances to PAYMENT
func (s *checkoutService) SubmitShipping(sess *repository.Session, req ShippingRequest) (*CheckoutStateResponse, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	if err := flow.SubmitShipping(toShippingForm(req)); err != nil {
		return nil, err
	}
	s.logger.Info("shipping information accepted", zap.String("session_id", sess.ID.String()))
	return s.state(flow), nil
}

// SetShippingMethod re-prices the checkout with the selected method
func (s *checkoutService) SetShippingMethod(sess *repository.Session, method string) (*CheckoutStateResponse, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	if err := flow.SetShippingMethod(domain.ShippingMethod(method)); err != nil {
		return nil, err
	}
	return s.state(flow), nil
}

// ReturnToShipping is the explicit backward transition
func (s *checkoutService) ReturnToShipping(sess *repository.Session) (*CheckoutStateResponse, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	if err := flow.ReturnToShipping(); err != nil {
		return nil, err
	}
	return s.state(flow), nil
}

// SubmitOrder runs the payment guard and, after the simulated processing
// delay, stores the order snapshot and resets the session's cart and
// checkout. The delay is cancellable through ctx.
func (s *checkoutService) SubmitOrder(ctx context.Context, sess *repository.Session, req PaymentRequest) (*OrderResponse, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	order, err := flow.SubmitOrder(domain.PaymentForm{
		CardNumber: req.CardNumber,
		CardName:   req.CardName,
		ExpiryDate: req.ExpiryDate,
		CVC:        req.CVC,
	})
	if err != nil {
		return nil, err
	}
	order.SessionID = sess.ID

	// Simulated processing before the confirmation signal
	done := make(chan struct{})
	timer := s.scheduler.AfterFunc(s.submitDelay, func() { close(done) })
	select {
	case <-done:
	case <-ctx.Done():
		timer.Stop()
		return nil, ctx.Err()
	}

	if err := s.repos.Order.Create(ctx, order); err != nil {
		return nil, err
	}
	sess.Cart = cart.NewLedger()
	sess.Checkout = nil
	s.logger.Info("order submitted",
		zap.String("session_id", sess.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.Totals.Total.StringFixed(2)),
	)
	return toOrderResponse(order), nil
}

// GetOrder returns a submitted order's confirmation view
func (s *checkoutService) GetOrder(ctx context.Context, sess *repository.Session, id string) (*OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SessionID != sess.ID {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	return toOrderResponse(order), nil
}

func (s *checkoutService) flow(sess *repository.Session) (*checkout.Flow, error) {
	if sess.Checkout == nil {
		return nil, &errors.ErrNotFound{Resource: "checkout", ID: sess.ID.String()}
	}
	return sess.Checkout, nil
}

func (s *checkoutService) state(flow *checkout.Flow) *CheckoutStateResponse {
	resp := &CheckoutStateResponse{
		Phase:          string(flow.Phase()),
		ShippingMethod: string(flow.Method()),
		Totals:         toTotalsDTO(flow.Totals()),
	}
	if info := flow.ShippingInfo(); info != nil {
		dto := toShippingRequest(*info)
		resp.Shipping = &dto
	}
	return resp
}

func toShippingForm(req ShippingRequest) domain.ShippingForm {
	return domain.ShippingForm{
		Email:      req.Email,
		FullName:   req.FullName,
		Address:    req.Address,
		Apartment:  req.Apartment,
		City:       req.City,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	}
}

func toShippingRequest(form domain.ShippingForm) ShippingRequest {
	return ShippingRequest{
		Email:      form.Email,
		FullName:   form.FullName,
		Address:    form.Address,
		Apartment:  form.Apartment,
		City:       form.City,
		Country:    form.Country,
		PostalCode: form.PostalCode,
		Phone:      form.Phone,
	}
}

func toOrderResponse(order *domain.Order) *OrderResponse {
	resp := &OrderResponse{
		OrderID:        order.ID.String(),
		Items:          make([]CartItemDTO, 0, len(order.Items)),
		Shipping:       toShippingRequest(order.Shipping),
		ShippingMethod: string(order.ShippingMethod),
		CardLast4:      order.CardLast4,
		Totals:         toTotalsDTO(order.Totals),
		SubmittedAt:    order.SubmittedAt.Format(time.RFC3339),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, toCartItemDTO(item))
	}
	return resp
}
