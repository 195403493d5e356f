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

// LogRepository persists the audit log, newest-first, ring-bounded to
// domain.MaxLogEntries. Entries are immutable once written.
type LogRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *LogRepository) load(ctx context.Context) ([]domain.LogEntry, error) {
	var logs []domain.LogEntry
	if err := r.store.Load(ctx, ports.CollectionLogs, &logs); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load logs: %w", err)
	}
	return logs, nil
}

func (r *LogRepository) List(ctx context.Context) ([]domain.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Append prepends the entry, assigning id and timestamp, and evicts the
// oldest entries past the ring bound.
func (r *LogRepository) Append(ctx context.Context, e *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logs, err := r.load(ctx)
	if err != nil {
		return err
	}

	e.ID = newID("log")
	e.Timestamp = time.Now().UTC()
	if e.Metadata == nil {
		e.Metadata = map[string]string{}
	}

	logs = append([]domain.LogEntry{*e}, logs...)
	if len(logs) > domain.MaxLogEntries {
		logs = logs[:domain.MaxLogEntries]
	}

	if err := r.store.Save(ctx, ports.CollectionLogs, logs); err != nil {
		return fmt.Errorf("save logs: %w", err)
	}
	return nil
}
