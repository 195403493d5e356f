package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// TaskRepository persists the tasks collection.
type TaskRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *TaskRepository) load(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.store.Load(ctx, ports.CollectionTasks, &tasks); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) save(ctx context.Context, tasks []domain.Task) error {
	if err := r.store.Save(ctx, ports.CollectionTasks, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			t := tasks[i]
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// Create assigns a fresh id, stamps CreatedAt=UpdatedAt=now and persists.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t.ID = newID("task")
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Checklist == nil {
		t.Checklist = []domain.ChecklistItem{}
	}
	if t.Comments == nil {
		t.Comments = []domain.Comment{}
	}

	tasks = append(tasks, *t)
	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}
	created := *t
	return &created, nil
}

// Update merges patch over the stored record and re-stamps UpdatedAt. The
// re-stamp is unconditional: a patch that changes nothing still advances it.
func (r *TaskRepository) Update(ctx context.Context, id string, patch ports.TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrTaskNotFound
	}

	t := &tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.Manager != nil {
		t.Manager = *patch.Manager
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Checklist != nil {
		t.Checklist = *patch.Checklist
	}
	if patch.Comments != nil {
		t.Comments = *patch.Comments
	}
	t.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}
	updated := *t
	return &updated, nil
}

// Delete is unconditional for tasks.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return domain.ErrTaskNotFound
	}
	return r.save(ctx, kept)
}
