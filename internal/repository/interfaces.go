package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/cart"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/checkout"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/selection"
)

// Session is one shopper's in-memory state: cart, per-product selections
// and the active checkout flow. Everything here resets when the process
// restarts.
type Session struct {
	ID         uuid.UUID
	Cart       *cart.Ledger
	Selections map[string]*selection.Selection // productID -> selection
	Checkout   *checkout.Flow
	CreatedAt  time.Time
}

// SessionRepository defines session state access methods
type SessionRepository interface {
	Create(ctx context.Context) (*Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
}

// OrderRepository defines submitted-order access methods
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.Order, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Session SessionRepository
	Order   OrderRepository
}
