package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// NotificationRepository persists the notifications collection. Canonical
// order is newest-first: Create prepends.
type NotificationRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *NotificationRepository) load(ctx context.Context) ([]domain.Notification, error) {
	var notifs []domain.Notification
	if err := r.store.Load(ctx, ports.CollectionNotifications, &notifs); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notifs, nil
}

func (r *NotificationRepository) save(ctx context.Context, notifs []domain.Notification) error {
	if err := r.store.Save(ctx, ports.CollectionNotifications, notifs); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notifs {
		if notifs[i].ID == id {
			n := notifs[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	n.ID = newID("notif")
	n.CreatedAt = time.Now().UTC()
	if n.Metadata == nil {
		n.Metadata = map[string]string{}
	}

	notifs = append([]domain.Notification{*n}, notifs...)
	if err := r.save(ctx, notifs); err != nil {
		return nil, err
	}
	created := *n
	return &created, nil
}

func (r *NotificationRepository) SetRead(ctx context.Context, id string, read bool) (*domain.Notification, error) {
	return r.modify(ctx, id, func(n *domain.Notification) { n.Read = read })
}

func (r *NotificationRepository) SetDeleted(ctx context.Context, id string, deleted bool) (*domain.Notification, error) {
	return r.modify(ctx, id, func(n *domain.Notification) { n.Deleted = deleted })
}

func (r *NotificationRepository) modify(ctx context.Context, id string, fn func(*domain.Notification)) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notifs {
		if notifs[i].ID == id {
			fn(&notifs[i])
			if err := r.save(ctx, notifs); err != nil {
				return nil, err
			}
			n := notifs[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

// Purge removes the entry entirely. Irreversible.
func (r *NotificationRepository) Purge(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifs, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := notifs[:0]
	found := false
	for _, n := range notifs {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return domain.ErrNotificationNotFound
	}
	return r.save(ctx, kept)
}
