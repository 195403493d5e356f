package ports

import (
	"context"
	"time"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

// BackupVersion is stamped into every export document.
const BackupVersion = "1.0.0"

// BackupDocument is the single-file export/import format.
type BackupDocument struct {
	Users         []domain.User         `json:"users"`
	Tasks         []domain.Task         `json:"tasks"`
	Projects      []domain.Project      `json:"projects"`
	Notifications []domain.Notification `json:"notifications"`
	Logs          []domain.LogEntry     `json:"logs"`
	Settings      domain.Settings       `json:"settings"`
	ExportedAt    time.Time             `json:"exportedAt"`
	Version       string                `json:"version"`
}

// BackupService exports the full state and restores it from a backup
// document. Import rejects documents missing any of the users, tasks or
// projects keys before any storage write; notifications, logs and settings
// default to empty when absent. On success every collection is replaced.
type BackupService interface {
	Export(ctx context.Context) (*BackupDocument, error)
	Import(ctx context.Context, data []byte) error
}
