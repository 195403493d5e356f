package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

func newSettingsSvc(t *testing.T) (*SettingsService, *stubUserRepo, *stubSessionRepo, *fakeStore) {
	t.Helper()
	users := seededUsers(t)
	sessions := &stubSessionRepo{}
	_ = sessions.SetCurrent(context.Background(), users.users[0])
	store := newFakeStore()
	svc := NewSettingsService(&stubSettingsRepo{}, users, sessions, store, &stubAuditor{}, zerolog.Nop())
	return svc, users, sessions, store
}

func TestSettingsService_UpdateAndGet(t *testing.T) {
	svc, _, _, _ := newSettingsSvc(t)
	ctx := context.Background()

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != "light" || !got.Notifications {
		t.Errorf("expected defaults, got %+v", got)
	}

	updated, err := svc.Update(ctx, domain.Settings{Theme: "dark", Notifications: false})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Theme != "dark" || updated.Notifications {
		t.Errorf("unexpected settings after update: %+v", updated)
	}

	if _, err := svc.Update(ctx, domain.Settings{Theme: "solarized"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown theme, got: %v", err)
	}
}

func TestSettingsService_UpdateProfile(t *testing.T) {
	svc, users, sessions, _ := newSettingsSvc(t)
	ctx := context.Background()

	user, err := svc.UpdateProfile(ctx, "Natalie", "nat@example.com")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user.Name != "Natalie" || user.Email != "nat@example.com" {
		t.Errorf("unexpected profile: %+v", user)
	}
	if users.users[0].Name != "Natalie" {
		t.Error("users collection must reflect the rename")
	}
	if sessions.current.Name != "Natalie" {
		t.Error("session document must stay in sync with the profile")
	}
}

func TestSettingsService_ChangePassword(t *testing.T) {
	svc, users, _, _ := newSettingsSvc(t)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, "wrong", "longenough"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if err := svc.ChangePassword(ctx, "123456", "short"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for short password, got: %v", err)
	}

	if err := svc.ChangePassword(ctx, "123456", "longenough"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users.users[0].PasswordHash), []byte("longenough")); err != nil {
		t.Error("stored hash must match the new password")
	}
}

func TestSettingsService_ClearData(t *testing.T) {
	svc, _, sessions, store := newSettingsSvc(t)
	ctx := context.Background()

	// Pre-populate collections that should be wiped.
	_ = store.Save(ctx, ports.CollectionTasks, []domain.Task{{ID: "t1", Title: "doomed"}})
	_ = store.Save(ctx, ports.CollectionLogs, []domain.LogEntry{{ID: "l1"}})

	if err := svc.ClearData(ctx); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var tasks []domain.Task
	if err := store.Load(ctx, ports.CollectionTasks, &tasks); err != nil || len(tasks) != 0 {
		t.Errorf("expected empty tasks, got %v (%v)", tasks, err)
	}
	var logEntries []domain.LogEntry
	if err := store.Load(ctx, ports.CollectionLogs, &logEntries); err != nil || len(logEntries) != 0 {
		t.Errorf("expected empty logs, got %v (%v)", logEntries, err)
	}
	if sessions.current == nil {
		t.Error("clear data must keep the current session")
	}
}
