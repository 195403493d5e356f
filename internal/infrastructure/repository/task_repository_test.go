package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/memory"
)

func TestTaskRepository_CreateStampsAndAssignsID(t *testing.T) {
	repos := New(memory.NewStore())
	ctx := context.Background()

	a, err := repos.Tasks.Create(ctx, &domain.Task{Title: "first", Status: domain.StatusTodo})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	b, err := repos.Tasks.Create(ctx, &domain.Task{Title: "second", Status: domain.StatusTodo})
	if err != nil {
		t.Fatal(err)
	}

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() || !a.CreatedAt.Equal(a.UpdatedAt) {
		t.Errorf("expected CreatedAt == UpdatedAt on create, got %v / %v", a.CreatedAt, a.UpdatedAt)
	}
	if a.Checklist == nil || a.Comments == nil {
		t.Error("expected empty non-nil checklist and comments")
	}

	all, err := repos.Tasks.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != b.ID {
		t.Errorf("expected insertion order preserved, got %+v", all)
	}
}

func TestTaskRepository_UpdateMergesAndRestamps(t *testing.T) {
	repos := New(memory.NewStore())
	ctx := context.Background()

	created, _ := repos.Tasks.Create(ctx, &domain.Task{
		Title: "original", Description: "stays", Status: domain.StatusTodo, Priority: domain.PriorityLow,
	})

	newStatus := domain.StatusDone
	updated, err := repos.Tasks.Update(ctx, created.ID, ports.TaskPatch{Status: &newStatus})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if updated.Status != domain.StatusDone {
		t.Errorf("expected status done, got %s", updated.Status)
	}
	if updated.Title != "original" || updated.Description != "stays" {
		t.Error("unpatched fields must survive")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("expected UpdatedAt re-stamp")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must never change on update")
	}
}

func TestTaskRepository_NotFound(t *testing.T) {
	repos := New(memory.NewStore())
	ctx := context.Background()

	if _, err := repos.Tasks.GetByID(ctx, "nope"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("GetByID: expected ErrTaskNotFound, got %v", err)
	}
	if err := repos.Tasks.Delete(ctx, "nope"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Delete: expected ErrTaskNotFound, got %v", err)
	}

	// An unwritten store reads as an empty collection, not an error.
	all, err := repos.Tasks.List(ctx)
	if err != nil || len(all) != 0 {
		t.Errorf("expected empty list, got %v (%v)", all, err)
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	repos := New(memory.NewStore())
	ctx := context.Background()

	keep, _ := repos.Tasks.Create(ctx, &domain.Task{Title: "keep", Status: domain.StatusTodo})
	drop, _ := repos.Tasks.Create(ctx, &domain.Task{Title: "drop", Status: domain.StatusTodo})

	if err := repos.Tasks.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	all, _ := repos.Tasks.List(ctx)
	if len(all) != 1 || all[0].ID != keep.ID {
		t.Errorf("expected only %s to remain, got %+v", keep.ID, all)
	}
}
