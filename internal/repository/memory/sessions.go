package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/cart"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/selection"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

// sessionRepository keeps sessions in a mutex-guarded map. Sessions are
// only ever created and looked up; expiry is process restart.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*repository.Session
	logger   *zap.Logger
}

// NewSessionRepository creates an empty in-memory session store
func NewSessionRepository(logger *zap.Logger) repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*repository.Session),
		logger:   logger,
	}
}

func (r *sessionRepository) Create(_ context.Context) (*repository.Session, error) {
	s := &repository.Session{
		ID:         uuid.New(),
		Cart:       cart.NewLedger(),
		Selections: make(map[string]*selection.Selection),
		CreatedAt:  time.Now().UTC(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	r.logger.Debug("session created", zap.String("session_id", s.ID.String()))
	return s, nil
}

func (r *sessionRepository) GetByID(_ context.Context, id uuid.UUID) (*repository.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "session", ID: id.String()}
	}
	return s, nil
}
