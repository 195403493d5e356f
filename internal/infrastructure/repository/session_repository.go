package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// SessionRepository holds the single current-user document.
type SessionRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *SessionRepository) Current(ctx context.Context) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var u domain.User
	if err := r.store.Load(ctx, ports.CollectionCurrentUser, &u); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("load current user: %w", err)
	}
	if u.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return &u, nil
}

// SetCurrent stores the user minus the password hash.
func (r *SessionRepository) SetCurrent(ctx context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Save(ctx, ports.CollectionCurrentUser, u.WithoutPassword()); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Save(ctx, ports.CollectionCurrentUser, domain.User{}); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	return nil
}
