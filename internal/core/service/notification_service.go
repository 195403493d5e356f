package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

const dueDateLayout = "2006-01-02"

// NotificationService manages the inbox/trash lifecycle and derives due-soon
// reminders from task due dates.
type NotificationService struct {
	notifs ports.NotificationRepository
	tasks  ports.TaskRepository
	mailer ports.Mailer
	audit  ports.Auditor
	logger zerolog.Logger
}

func NewNotificationService(notifs ports.NotificationRepository, tasks ports.TaskRepository, mailer ports.Mailer, audit ports.Auditor, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifs: notifs, tasks: tasks, mailer: mailer, audit: audit, logger: logger}
}

// List returns the requested view, newest-first. The inbox hides trashed
// notifications; the trash shows only them.
func (s *NotificationService) List(ctx context.Context, view string) ([]domain.Notification, error) {
	all, err := s.notifs.List(ctx)
	if err != nil {
		return nil, err
	}

	trashed := view == ports.ViewTrash
	out := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.Deleted == trashed {
			out = append(out, n)
		}
	}
	return out, nil
}

// UnreadCount counts notifications that are neither read nor trashed.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.notifs.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if !n.Read && !n.Deleted {
			count++
		}
	}
	return count, nil
}

func (s *NotificationService) Create(ctx context.Context, typ, subject, body string, metadata map[string]string) (*domain.Notification, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if typ == "" {
		typ = domain.NotificationSystem
	}

	created, err := s.notifs.Create(ctx, &domain.Notification{
		Type:     typ,
		Subject:  subject,
		Body:     body,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogNotification,
		Action:      "create notification",
		Description: "notification: " + created.Subject,
		Metadata:    map[string]string{"notificationId": created.ID, "notificationType": typ},
	})
	return created, nil
}

func (s *NotificationService) SetRead(ctx context.Context, id string, read bool) (*domain.Notification, error) {
	n, err := s.notifs.SetRead(ctx, id, read)
	if err != nil {
		return nil, err
	}

	action := "mark unread"
	if read {
		action = "mark read"
	}
	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogNotification,
		Action:      action,
		Description: "notification: " + n.Subject,
		Metadata:    map[string]string{"notificationId": id},
	})
	return n, nil
}

// SoftDelete moves a notification to the trash. The read flag is untouched
// and survives a later restore.
func (s *NotificationService) SoftDelete(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.notifs.SetDeleted(ctx, id, true)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogNotification,
		Action:      "trash notification",
		Description: "notification: " + n.Subject,
		Metadata:    map[string]string{"notificationId": id},
	})
	return n, nil
}

func (s *NotificationService) Restore(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.notifs.SetDeleted(ctx, id, false)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogNotification,
		Action:      "restore notification",
		Description: "notification: " + n.Subject,
		Metadata:    map[string]string{"notificationId": id},
	})
	return n, nil
}

// Purge removes a notification permanently.
func (s *NotificationService) Purge(ctx context.Context, id string) error {
	n, err := s.notifs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.notifs.Purge(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogNotification,
		Action:      "purge notification",
		Description: "notification: " + n.Subject,
		Metadata:    map[string]string{"notificationId": id},
	})
	return nil
}

// CheckUpcomingDue emits a task_due_soon notification for every not-done task
// whose due date is between zero and three days out, at most once per task
// per calendar day. Repeated invocations within the same day are idempotent;
// a task that stays due-soon accumulates one notification per day.
func (s *NotificationService) CheckUpcomingDue(ctx context.Context, now time.Time) error {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return err
	}
	existing, err := s.notifs.List(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		task := &tasks[i]
		if task.Status == domain.StatusDone || task.DueDate == "" {
			continue
		}
		due, err := time.ParseInLocation(dueDateLayout, task.DueDate, now.Location())
		if err != nil {
			s.logger.Warn().Str("task_id", task.ID).Str("due_date", task.DueDate).Msg("skipping task with unparseable due date")
			continue
		}

		days := int(math.Ceil(due.Sub(now).Hours() / 24))
		if days < 0 || days > 3 {
			continue
		}
		if hasDueSoonToday(existing, task.ID, now) {
			continue
		}

		created, err := s.notifs.Create(ctx, &domain.Notification{
			Type:    domain.NotificationDueSoon,
			Subject: fmt.Sprintf("Task %q is due soon", task.Title),
			Body:    dueSoonBody(task.Title, days),
			Metadata: map[string]string{
				"taskId":        task.ID,
				"daysRemaining": fmt.Sprintf("%d", days),
			},
		})
		if err != nil {
			return err
		}
		existing = append(existing, *created)

		s.audit.Record(ctx, ports.AuditEntry{
			Type:        domain.LogNotification,
			Action:      "due soon",
			Description: "task due soon: " + task.Title,
			Metadata:    map[string]string{"taskId": task.ID, "notificationId": created.ID},
		})
	}
	return nil
}

// Remind creates a manual reminder notification for a task and fires the mail
// side-channel for the acting user.
func (s *NotificationService) Remind(ctx context.Context, taskID, message string) (*domain.Notification, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(message) == "" {
		message = "Reminder for task: " + task.Title
	}

	created, err := s.notifs.Create(ctx, &domain.Notification{
		Type:     domain.NotificationReminder,
		Subject:  "Reminder: " + task.Title,
		Body:     message,
		Metadata: map[string]string{"taskId": taskID},
	})
	if err != nil {
		return nil, err
	}

	actor := ports.ActorFrom(ctx)
	if actor.Email != "" {
		s.mailer.Send(ctx, actor.Email, created.Subject, created.Body)
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogReminder,
		Action:      "send reminder",
		Description: "reminder for task: " + task.Title,
		Metadata:    map[string]string{"taskId": taskID, "notificationId": created.ID},
	})
	return created, nil
}

// hasDueSoonToday reports whether a task_due_soon notification for taskID was
// already created on now's calendar day. Trashed notifications still count;
// deleting a reminder does not re-arm it for the day.
func hasDueSoonToday(notifs []domain.Notification, taskID string, now time.Time) bool {
	y, m, d := now.Date()
	for i := range notifs {
		n := &notifs[i]
		if n.Type != domain.NotificationDueSoon || n.Metadata["taskId"] != taskID {
			continue
		}
		ny, nm, nd := n.CreatedAt.In(now.Location()).Date()
		if ny == y && nm == m && nd == d {
			return true
		}
	}
	return false
}

func dueSoonBody(title string, days int) string {
	switch days {
	case 0:
		return fmt.Sprintf("Task %q is due today.", title)
	case 1:
		return fmt.Sprintf("Task %q is due tomorrow.", title)
	default:
		return fmt.Sprintf("Task %q is due in %d days.", title, days)
	}
}
