package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// UserRepository persists the users collection. Users enter the system at
// seed or import time; the core never deletes them.
type UserRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *UserRepository) load(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Load(ctx, ports.CollectionUsers, &users); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		u := &users[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		if err := r.store.Save(ctx, ports.CollectionUsers, users); err != nil {
			return nil, fmt.Errorf("save users: %w", err)
		}
		updated := *u
		return &updated, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) SaveAll(ctx context.Context, users []domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Save(ctx, ports.CollectionUsers, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
