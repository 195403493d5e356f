package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// BackupService exports the full state as one document and restores it from
// an uploaded backup.
type BackupService struct {
	store  ports.Store
	audit  ports.Auditor
	logger zerolog.Logger
}

func NewBackupService(store ports.Store, audit ports.Auditor, logger zerolog.Logger) *BackupService {
	return &BackupService{store: store, audit: audit, logger: logger}
}

func (s *BackupService) Export(ctx context.Context) (*ports.BackupDocument, error) {
	doc := &ports.BackupDocument{
		Users:         []domain.User{},
		Tasks:         []domain.Task{},
		Projects:      []domain.Project{},
		Notifications: []domain.Notification{},
		Logs:          []domain.LogEntry{},
		Settings:      domain.DefaultSettings(),
		ExportedAt:    time.Now().UTC(),
		Version:       ports.BackupVersion,
	}

	for key, out := range map[string]any{
		ports.CollectionUsers:         &doc.Users,
		ports.CollectionTasks:         &doc.Tasks,
		ports.CollectionProjects:      &doc.Projects,
		ports.CollectionNotifications: &doc.Notifications,
		ports.CollectionLogs:          &doc.Logs,
		ports.CollectionSettings:      &doc.Settings,
	} {
		if err := s.store.Load(ctx, key, out); err != nil && !errors.Is(err, ports.ErrKeyNotFound) {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogExport,
		Action:      "export data",
		Description: fmt.Sprintf("exported %d tasks, %d projects, %d users", len(doc.Tasks), len(doc.Projects), len(doc.Users)),
	})
	s.logger.Info().Int("tasks", len(doc.Tasks)).Int("projects", len(doc.Projects)).Msg("data exported")
	return doc, nil
}

// backupPayload distinguishes absent keys (nil slice pointers) from present
// empty collections, which json.Unmarshal into ports.BackupDocument cannot.
type backupPayload struct {
	Users         *[]domain.User         `json:"users"`
	Tasks         *[]domain.Task         `json:"tasks"`
	Projects      *[]domain.Project      `json:"projects"`
	Notifications *[]domain.Notification `json:"notifications"`
	Logs          *[]domain.LogEntry     `json:"logs"`
	Settings      *domain.Settings       `json:"settings"`
}

// Import validates the backup before any write: the users, tasks and projects
// keys must be present (empty arrays are fine). Notifications, logs and
// settings default when absent. On success every collection is replaced.
func (s *BackupService) Import(ctx context.Context, data []byte) error {
	var payload backupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedBackup, err)
	}
	if payload.Users == nil || payload.Tasks == nil || payload.Projects == nil {
		return fmt.Errorf("%w: users, tasks and projects are required", domain.ErrMalformedBackup)
	}

	notifications := []domain.Notification{}
	if payload.Notifications != nil {
		notifications = *payload.Notifications
	}
	logs := []domain.LogEntry{}
	if payload.Logs != nil {
		logs = *payload.Logs
	}
	if len(logs) > domain.MaxLogEntries {
		logs = logs[:domain.MaxLogEntries]
	}
	settings := domain.DefaultSettings()
	if payload.Settings != nil {
		settings = *payload.Settings
	}

	err := s.store.ReplaceAll(ctx, map[string]any{
		ports.CollectionUsers:         *payload.Users,
		ports.CollectionTasks:         *payload.Tasks,
		ports.CollectionProjects:      *payload.Projects,
		ports.CollectionNotifications: notifications,
		ports.CollectionLogs:          logs,
		ports.CollectionSettings:      settings,
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogImport,
		Action:      "import data",
		Description: fmt.Sprintf("imported %d tasks, %d projects, %d users", len(*payload.Tasks), len(*payload.Projects), len(*payload.Users)),
	})
	s.logger.Info().Int("tasks", len(*payload.Tasks)).Int("projects", len(*payload.Projects)).Msg("data imported")
	return nil
}
