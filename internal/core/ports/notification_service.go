package ports

import (
	"context"
	"time"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

// Notification views.
const (
	ViewInbox = "inbox" // deleted=false
	ViewTrash = "trash" // deleted=true
)

// NotificationService manages the inbox/trash lifecycle and derives due-soon
// reminders from task due dates.
type NotificationService interface {
	List(ctx context.Context, view string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	Create(ctx context.Context, typ, subject, body string, metadata map[string]string) (*domain.Notification, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.Notification, error)
	SoftDelete(ctx context.Context, id string) (*domain.Notification, error)
	Restore(ctx context.Context, id string) (*domain.Notification, error)
	Purge(ctx context.Context, id string) error

	// CheckUpcomingDue emits a task_due_soon notification for every not-done
	// task due within three days, at most once per task per calendar day.
	CheckUpcomingDue(ctx context.Context, now time.Time) error
	// Remind creates a manual reminder for a task and fires the mail
	// side-channel for the acting user.
	Remind(ctx context.Context, taskID, message string) (*domain.Notification, error)
}

// Mailer is the fire-and-forget email side-channel. Delivery failure is not
// modeled; Send always reports success.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) bool
}
