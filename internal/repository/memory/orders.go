package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
	logger *zap.Logger
}

// NewOrderRepository creates an empty in-memory order store
func NewOrderRepository(logger *zap.Logger) repository.OrderRepository {
	return &orderRepository{
		orders: make(map[uuid.UUID]*domain.Order),
		logger: logger,
	}
}

func (r *orderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	r.orders[order.ID] = order
	r.mu.Unlock()
	r.logger.Info("order stored",
		zap.String("order_id", order.ID.String()),
		zap.String("session_id", order.SessionID.String()),
		zap.String("total", order.Totals.Total.StringFixed(2)),
	)
	return nil
}

func (r *orderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	order, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	return order, nil
}

func (r *orderRepository) ListBySessionID(_ context.Context, sessionID uuid.UUID) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if order.SessionID == sessionID {
			out = append(out, order)
		}
	}
	return out, nil
}

// NewRepositories wires the in-memory stores together
func NewRepositories(logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Session: NewSessionRepository(logger),
		Order:   NewOrderRepository(logger),
	}
}
