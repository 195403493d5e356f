package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// SettingsRepository holds the single settings document.
type SettingsRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s domain.Settings
	if err := r.store.Load(ctx, ports.CollectionSettings, &s); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if s.Theme == "" {
		s.Theme = "light"
	}
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Save(ctx, ports.CollectionSettings, s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
