// Package memory provides an in-process Store backend. State lives for the
// process lifetime only; it is the default backend and the one tests use.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// Store keeps every collection as a marshaled JSON document, mirroring what
// the durable backends persist so that encoding behavior matches.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{docs: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string, out any) error {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return ports.ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) Save(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *Store) ReplaceAll(_ context.Context, docs map[string]any) error {
	encoded := make(map[string][]byte, len(docs))
	for key, v := range docs {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		encoded[key] = raw
	}
	s.mu.Lock()
	for key, raw := range encoded {
		s.docs[key] = raw
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }
