// Package repository implements the collection repositories on top of the
// Store port. Every mutation is a whole-collection read/modify/write; a
// single mutex shared by all repositories serializes those cycles so
// concurrent requests cannot clobber each other's writes.
package repository

import (
	"sync"

	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// Repositories bundles one repository per collection, all backed by the same
// store and serialized by the same mutex.
type Repositories struct {
	Tasks         *TaskRepository
	Projects      *ProjectRepository
	Notifications *NotificationRepository
	Logs          *LogRepository
	Users         *UserRepository
	Session       *SessionRepository
	Settings      *SettingsRepository
}

// New builds the repository set over the given store.
func New(store ports.Store) *Repositories {
	mu := &sync.Mutex{}
	return &Repositories{
		Tasks:         &TaskRepository{store: store, mu: mu},
		Projects:      &ProjectRepository{store: store, mu: mu},
		Notifications: &NotificationRepository{store: store, mu: mu},
		Logs:          &LogRepository{store: store, mu: mu},
		Users:         &UserRepository{store: store, mu: mu},
		Session:       &SessionRepository{store: store, mu: mu},
		Settings:      &SettingsRepository{store: store, mu: mu},
	}
}
