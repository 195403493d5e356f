package domain

import "time"

// MaxLogEntries bounds the logs collection; the oldest entries are evicted
// first on overflow.
const MaxLogEntries = 1000

// Log entry types, mirroring the subsystems that produce them.
const (
	LogAuth         = "auth"
	LogTask         = "task"
	LogProject      = "project"
	LogChecklist    = "checklist"
	LogComment      = "comment"
	LogNotification = "notification"
	LogSettings     = "settings"
	LogReminder     = "reminder"
	LogExport       = "export"
	LogImport       = "import"
)

// LogEntry is an immutable audit record. The logs collection is kept
// newest-first and ring-bounded to MaxLogEntries.
type LogEntry struct {
	ID          string            `json:"id" bson:"id"`
	Type        string            `json:"type" bson:"type"`
	Action      string            `json:"action" bson:"action"`
	Description string            `json:"description" bson:"description"`
	Metadata    map[string]string `json:"metadata" bson:"metadata"`
	UserID      string            `json:"userId" bson:"user_id"`
	UserName    string            `json:"userName" bson:"user_name"`
	Timestamp   time.Time         `json:"timestamp" bson:"timestamp"`
}
