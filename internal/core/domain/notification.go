package domain

import "time"

// Notification types. DueSoon reminders are deduplicated per task per
// calendar day; the others are created freely.
const (
	NotificationEmail    = "email"
	NotificationReminder = "reminder"
	NotificationSystem   = "system"
	NotificationDueSoon  = "task_due_soon"
)

// Notification has a two-state soft-delete lifecycle: active → trashed
// (Deleted=true) → permanently removed. Read is independent of Deleted and
// survives trash/restore round-trips.
type Notification struct {
	ID        string            `json:"id" bson:"id"`
	Type      string            `json:"type" bson:"type"`
	Subject   string            `json:"subject" bson:"subject"`
	Body      string            `json:"body" bson:"body"`
	Metadata  map[string]string `json:"metadata" bson:"metadata"`
	Read      bool              `json:"read" bson:"read"`
	Deleted   bool              `json:"deleted" bson:"deleted"`
	CreatedAt time.Time         `json:"createdAt" bson:"created_at"`
}
