package ports

import (
	"context"
	"errors"
)

// Collection keys. Every collection is a single JSON document in the store;
// mutations are whole-document rewrites behind the repository layer.
const (
	CollectionUsers         = "users"
	CollectionCurrentUser   = "currentUser"
	CollectionTasks         = "tasks"
	CollectionProjects      = "projects"
	CollectionNotifications = "notifications"
	CollectionLogs          = "logs"
	CollectionSettings      = "settings"
)

// ErrKeyNotFound is returned by Store.Load when the collection has never been
// written. Repositories treat it as an empty collection.
var ErrKeyNotFound = errors.New("store key not found")

// Store is the persistence boundary: a named-document key-value store. The
// backend (in-memory, Redis, SQLite, MongoDB) is swappable without touching
// call sites.
type Store interface {
	// Load decodes the document stored under key into out.
	Load(ctx context.Context, key string, out any) error
	// Save encodes v and overwrites the document stored under key.
	Save(ctx context.Context, key string, v any) error
	// ReplaceAll overwrites every given document. Backends make this as
	// atomic as they can; the caller treats it as a single replacement.
	ReplaceAll(ctx context.Context, docs map[string]any) error
	// Ping reports backend connectivity for readiness probes.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close(ctx context.Context) error
}
