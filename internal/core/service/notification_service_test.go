package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

func newNotifSvc(tasks *stubTaskRepo) (*NotificationService, *stubNotifRepo, *stubMailer, *stubAuditor) {
	notifs := &stubNotifRepo{}
	mailer := &stubMailer{}
	audit := &stubAuditor{}
	return NewNotificationService(notifs, tasks, mailer, audit, zerolog.Nop()), notifs, mailer, audit
}

func dueTask(id, title string, due time.Time, status domain.TaskStatus) domain.Task {
	return domain.Task{ID: id, Title: title, Status: status, DueDate: due.Format("2006-01-02")}
}

func TestNotificationService_CheckUpcomingDue_Window(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks := &stubTaskRepo{tasks: []domain.Task{
		dueTask("t-today", "due today", now, domain.StatusTodo),
		dueTask("t-3days", "due in three", now.AddDate(0, 0, 3), domain.StatusInProgress),
		dueTask("t-4days", "too far out", now.AddDate(0, 0, 4), domain.StatusTodo),
		dueTask("t-past", "overdue", now.AddDate(0, 0, -2), domain.StatusTodo),
		dueTask("t-done", "already done", now, domain.StatusDone),
		{ID: "t-nodate", Title: "no due date", Status: domain.StatusTodo},
	}}
	svc, notifs, _, audit := newNotifSvc(tasks)

	if err := svc.CheckUpcomingDue(context.Background(), now); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	all, _ := notifs.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 due-soon notifications, got %d", len(all))
	}
	got := map[string]bool{}
	for _, n := range all {
		if n.Type != domain.NotificationDueSoon {
			t.Errorf("unexpected type %s", n.Type)
		}
		got[n.Metadata["taskId"]] = true
	}
	if !got["t-today"] || !got["t-3days"] {
		t.Errorf("expected notifications for t-today and t-3days, got %v", got)
	}
	if len(audit.entries) != 2 {
		t.Errorf("expected one audit entry per emitted notification, got %d", len(audit.entries))
	}
}

func TestNotificationService_CheckUpcomingDue_DedupSameDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks := &stubTaskRepo{tasks: []domain.Task{
		dueTask("t1", "due in two", now.AddDate(0, 0, 2), domain.StatusTodo),
	}}
	svc, notifs, _, _ := newNotifSvc(tasks)

	// Two runs in the same calendar day emit one notification.
	if err := svc.CheckUpcomingDue(context.Background(), now); err != nil {
		t.Fatal(err)
	}
	if err := svc.CheckUpcomingDue(context.Background(), now.Add(6*time.Hour)); err != nil {
		t.Fatal(err)
	}
	all, _ := notifs.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 notification after same-day re-run, got %d", len(all))
	}

	// The next day re-arms the reminder.
	if err := svc.CheckUpcomingDue(context.Background(), now.AddDate(0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	all, _ = notifs.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected a second notification on the next day, got %d", len(all))
	}
}

func TestNotificationService_CheckUpcomingDue_TrashedStillDedups(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks := &stubTaskRepo{tasks: []domain.Task{
		dueTask("t1", "due soon", now.AddDate(0, 0, 1), domain.StatusTodo),
	}}
	svc, notifs, _, _ := newNotifSvc(tasks)

	if err := svc.CheckUpcomingDue(context.Background(), now); err != nil {
		t.Fatal(err)
	}
	all, _ := notifs.List(context.Background())
	if _, err := svc.SoftDelete(context.Background(), all[0].ID); err != nil {
		t.Fatal(err)
	}

	if err := svc.CheckUpcomingDue(context.Background(), now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	all, _ = notifs.List(context.Background())
	if len(all) != 1 {
		t.Errorf("trashing a reminder must not re-arm it for the day, got %d notifications", len(all))
	}
}

func TestNotificationService_ListViews(t *testing.T) {
	svc, _, _, _ := newNotifSvc(&stubTaskRepo{})
	ctx := context.Background()

	a, _ := svc.Create(ctx, domain.NotificationSystem, "first", "", nil)
	b, _ := svc.Create(ctx, domain.NotificationSystem, "second", "", nil)

	inbox, err := svc.List(ctx, ports.ViewInbox)
	if err != nil {
		t.Fatal(err)
	}
	if len(inbox) != 2 || inbox[0].ID != b.ID {
		t.Errorf("expected newest-first inbox [%s %s], got %+v", b.ID, a.ID, inbox)
	}

	if _, err := svc.SoftDelete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}

	inbox, _ = svc.List(ctx, ports.ViewInbox)
	trash, _ := svc.List(ctx, ports.ViewTrash)
	if len(inbox) != 1 || inbox[0].ID != b.ID {
		t.Errorf("expected only %s in inbox, got %+v", b.ID, inbox)
	}
	if len(trash) != 1 || trash[0].ID != a.ID {
		t.Errorf("expected only %s in trash, got %+v", a.ID, trash)
	}
}

func TestNotificationService_ReadSurvivesTrashRoundTrip(t *testing.T) {
	svc, _, _, _ := newNotifSvc(&stubTaskRepo{})
	ctx := context.Background()

	n, _ := svc.Create(ctx, domain.NotificationSystem, "keep my read flag", "", nil)

	if _, err := svc.SetRead(ctx, n.ID, true); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SoftDelete(ctx, n.ID); err != nil {
		t.Fatal(err)
	}
	restored, err := svc.Restore(ctx, n.ID)
	if err != nil {
		t.Fatal(err)
	}

	if !restored.Read {
		t.Error("read flag must survive a trash/restore round trip")
	}
	if restored.Deleted {
		t.Error("restored notification must not be deleted")
	}
}

func TestNotificationService_UnreadCount(t *testing.T) {
	svc, _, _, _ := newNotifSvc(&stubTaskRepo{})
	ctx := context.Background()

	a, _ := svc.Create(ctx, domain.NotificationSystem, "unread", "", nil)
	b, _ := svc.Create(ctx, domain.NotificationSystem, "read", "", nil)
	c, _ := svc.Create(ctx, domain.NotificationSystem, "trashed unread", "", nil)

	if _, err := svc.SetRead(ctx, b.ID, true); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SoftDelete(ctx, c.ID); err != nil {
		t.Fatal(err)
	}

	count, err := svc.UnreadCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected unread count 1 (only %s), got %d", a.ID, count)
	}

	// Restoring the trashed unread notification puts it back in the count.
	if _, err := svc.Restore(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if count, _ = svc.UnreadCount(ctx); count != 2 {
		t.Errorf("expected unread count 2 after restore, got %d", count)
	}

	// Trashing again drops it without touching the read flag.
	trashed, err := svc.SoftDelete(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if trashed.Read {
		t.Error("trash round-trips must not mark the notification read")
	}
	if count, _ = svc.UnreadCount(ctx); count != 1 {
		t.Errorf("expected unread count 1 after re-trash, got %d", count)
	}
}

func TestNotificationService_Purge(t *testing.T) {
	svc, notifs, _, _ := newNotifSvc(&stubTaskRepo{})
	ctx := context.Background()

	n, _ := svc.Create(ctx, domain.NotificationSystem, "short-lived", "", nil)
	if err := svc.Purge(ctx, n.ID); err != nil {
		t.Fatal(err)
	}

	all, _ := notifs.List(ctx)
	if len(all) != 0 {
		t.Errorf("expected empty collection after purge, got %d", len(all))
	}
	if err := svc.Purge(ctx, n.ID); err == nil {
		t.Error("purging a purged notification must fail")
	}
}

func TestNotificationService_Remind(t *testing.T) {
	tasks := &stubTaskRepo{tasks: []domain.Task{
		{ID: "t1", Title: "quarterly report", Status: domain.StatusInProgress},
	}}
	svc, _, mailer, audit := newNotifSvc(tasks)
	ctx := ports.WithActor(context.Background(), ports.Actor{ID: "user1", Name: "Nat", Email: "admin@example.com"})

	n, err := svc.Remind(ctx, "t1", "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n.Type != domain.NotificationReminder {
		t.Errorf("expected reminder type, got %s", n.Type)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mailer.sent))
	}
	if mailer.sent[0] != "admin@example.com|Reminder: quarterly report" {
		t.Errorf("unexpected mail: %s", mailer.sent[0])
	}
	if len(audit.entries) != 1 || audit.entries[0].Type != domain.LogReminder {
		t.Errorf("expected one reminder audit entry, got %+v", audit.entries)
	}
}
