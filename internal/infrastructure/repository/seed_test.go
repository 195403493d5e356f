package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/memory"
)

func TestSeed_FirstRunAndIdempotence(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := Seed(ctx, store, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repos := New(store)
	users, err := repos.Users.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 5 {
		t.Fatalf("expected 5 demo users, got %d", len(users))
	}

	projects, err := repos.Projects.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 4 {
		t.Fatalf("expected 4 demo projects, got %d", len(projects))
	}

	tasks, err := repos.Tasks.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 5 {
		t.Fatalf("expected 5 demo tasks, got %d", len(tasks))
	}
	lanes := map[domain.TaskStatus]bool{}
	dueSoon := 0
	for _, task := range tasks {
		lanes[task.Status] = true
		if task.ProjectID == "" {
			t.Errorf("task %s must reference a demo project", task.ID)
		}
		if task.Checklist == nil || task.Comments == nil {
			t.Errorf("task %s must carry non-nil checklist and comments", task.ID)
		}
		if task.Status != domain.StatusDone && task.DueDate != "" {
			due, err := time.Parse("2006-01-02", task.DueDate)
			if err != nil {
				t.Fatalf("task %s due date: %v", task.ID, err)
			}
			if d := time.Until(due); d >= 0 && d <= 3*24*time.Hour {
				dueSoon++
			}
		}
	}
	if len(lanes) != 3 {
		t.Errorf("expected demo tasks in all three lanes, got %v", lanes)
	}
	if dueSoon == 0 {
		t.Error("expected at least one not-done demo task due within three days")
	}

	api, err := repos.Tasks.GetByID(ctx, "task2")
	if err != nil {
		t.Fatal(err)
	}
	if completed, total := api.ChecklistProgress(); completed != 1 || total != 2 {
		t.Errorf("expected checklist progress 1/2, got %d/%d", completed, total)
	}
	if len(api.Checklist[0].Comments) != 1 {
		t.Error("expected a comment thread on the first checklist item")
	}

	admin, err := repos.Users.FindByEmail(ctx, "Admin@Example.com")
	if err != nil {
		t.Fatalf("email lookup must be case-insensitive: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(demoPassword)); err != nil {
		t.Error("demo password must verify against the stored hash")
	}

	settings, err := repos.Settings.Get(ctx)
	if err != nil || settings.Theme != "light" || !settings.Notifications {
		t.Errorf("expected default settings, got %+v (%v)", settings, err)
	}

	// A second seed against the same store must change nothing.
	renamed := "Renamed"
	if _, err := repos.Users.Update(ctx, admin.ID, ports.UserPatch{Name: &renamed}); err != nil {
		t.Fatal(err)
	}
	if err := Seed(ctx, store, zerolog.Nop()); err != nil {
		t.Fatal(err)
	}
	again, _ := repos.Users.GetByID(ctx, admin.ID)
	if again.Name != "Renamed" {
		t.Error("re-seeding must not overwrite existing data")
	}
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	store := memory.NewStore()
	repos := New(store)
	ctx := context.Background()

	if _, err := repos.Session.Current(ctx); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated on empty store, got %v", err)
	}

	err := repos.Session.SetCurrent(ctx, domain.User{ID: "user1", Name: "Nat", PasswordHash: "secret-hash"})
	if err != nil {
		t.Fatal(err)
	}

	current, err := repos.Session.Current(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if current.ID != "user1" {
		t.Errorf("unexpected current user: %+v", current)
	}
	if current.PasswordHash != "" {
		t.Error("session document must never carry the password hash")
	}

	// The session persists under the documented currentUser key.
	var raw domain.User
	if err := store.Load(ctx, ports.CollectionCurrentUser, &raw); err != nil {
		t.Fatalf("load %s: %v", ports.CollectionCurrentUser, err)
	}
	if raw.ID != "user1" {
		t.Errorf("unexpected session document: %+v", raw)
	}

	if err := repos.Session.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Session.Current(ctx); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated after clear, got %v", err)
	}
}
