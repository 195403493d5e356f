package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// TaskService implements task CRUD and the checklist/comment engine. Every
// checklist or comment mutation routes through the repository's update path,
// so the task's UpdatedAt advances atomically with the sub-item change.
type TaskService struct {
	repo   ports.TaskRepository
	audit  ports.Auditor
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, audit ports.Auditor, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, audit: audit, logger: logger}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, priority)
	}

	task := &domain.Task{
		Title:       title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		ProjectID:   in.ProjectID,
		Assignee:    in.Assignee,
		Manager:     in.Manager,
		DueDate:     in.DueDate,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogTask,
		Action:      "create task",
		Description: "created task: " + created.Title,
		Metadata:    map[string]string{"taskId": created.ID},
	})
	s.logger.Info().Str("task_id", created.ID).Str("title", created.Title).Msg("task created")
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, *in.Priority)
	}

	patch := ports.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		ProjectID:   in.ProjectID,
		Assignee:    in.Assignee,
		Manager:     in.Manager,
		DueDate:     in.DueDate,
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogTask,
		Action:      "update task",
		Description: "updated task: " + updated.Title,
		Metadata:    map[string]string{"taskId": id, "fields": patchedTaskFields(in)},
	})
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogTask,
		Action:      "delete task",
		Description: "deleted task: " + task.Title,
		Metadata:    map[string]string{"taskId": id},
	})
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

// --- Checklist engine ---

func (s *TaskService) AddChecklistItem(ctx context.Context, taskID, text string) (*domain.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: item text is required", domain.ErrValidation)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	item := domain.ChecklistItem{
		ID:        newSubID("cl"),
		Text:      text,
		Completed: false,
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	checklist := append(task.Checklist, item)

	if _, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Checklist: &checklist}); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogChecklist,
		Action:      "add item",
		Description: "added checklist item to task: " + task.Title,
		Metadata:    map[string]string{"taskId": taskID, "itemId": item.ID},
	})
	return &item, nil
}

func (s *TaskService) ToggleChecklistItem(ctx context.Context, taskID, itemID string) (*domain.ChecklistItem, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	idx := checklistIndex(task.Checklist, itemID)
	if idx == -1 {
		return nil, domain.ErrChecklistItemNotFound
	}

	checklist := task.Checklist
	checklist[idx].Completed = !checklist[idx].Completed
	item := checklist[idx]

	if _, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Checklist: &checklist}); err != nil {
		return nil, err
	}

	action := "reopened"
	if item.Completed {
		action = "completed"
	}
	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogChecklist,
		Action:      action,
		Description: "checklist item: " + item.Text,
		Metadata:    map[string]string{"taskId": taskID, "itemId": itemID},
	})
	return &item, nil
}

func (s *TaskService) UpdateChecklistItem(ctx context.Context, taskID, itemID, text string) (*domain.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: item text is required", domain.ErrValidation)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	idx := checklistIndex(task.Checklist, itemID)
	if idx == -1 {
		return nil, domain.ErrChecklistItemNotFound
	}

	checklist := task.Checklist
	checklist[idx].Text = text
	item := checklist[idx]

	if _, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Checklist: &checklist}); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogChecklist,
		Action:      "update item",
		Description: "updated checklist item in task: " + task.Title,
		Metadata:    map[string]string{"taskId": taskID, "itemId": itemID},
	})
	return &item, nil
}

// DeleteChecklistItem removes the item and its nested comments entirely.
func (s *TaskService) DeleteChecklistItem(ctx context.Context, taskID, itemID string) error {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	idx := checklistIndex(task.Checklist, itemID)
	if idx == -1 {
		return domain.ErrChecklistItemNotFound
	}
	checklist := append(task.Checklist[:idx:idx], task.Checklist[idx+1:]...)

	if _, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Checklist: &checklist}); err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogChecklist,
		Action:      "delete item",
		Description: "deleted checklist item from task: " + task.Title,
		Metadata:    map[string]string{"taskId": taskID, "itemId": itemID},
	})
	return nil
}

// --- Comment engine (append-only; comments are never edited or deleted) ---

func (s *TaskService) AddComment(ctx context.Context, taskID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrValidation)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment := newComment(ctx, text)
	comments := append(task.Comments, comment)

	if _, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Comments: &comments}); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogComment,
		Action:      "add comment",
		Description: "commented on task: " + task.Title,
		Metadata:    map[string]string{"taskId": taskID, "commentId": comment.ID},
	})
	return &comment, nil
}

func (s *TaskService) AddChecklistItemComment(ctx context.Context, taskID, itemID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrValidation)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	idx := checklistIndex(task.Checklist, itemID)
	if idx == -1 {
		return nil, domain.ErrChecklistItemNotFound
	}

	comment := newComment(ctx, text)
	checklist := task.Checklist
	checklist[idx].Comments = append(checklist[idx].Comments, comment)

	if _, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Checklist: &checklist}); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogComment,
		Action:      "add comment",
		Description: "commented on checklist item: " + checklist[idx].Text,
		Metadata:    map[string]string{"taskId": taskID, "itemId": itemID, "commentId": comment.ID},
	})
	return &comment, nil
}

// newComment snapshots the acting user's id and name at creation time.
func newComment(ctx context.Context, text string) domain.Comment {
	actor := ports.ActorFrom(ctx)
	return domain.Comment{
		ID:        newSubID("comment"),
		Text:      text,
		UserID:    actor.ID,
		UserName:  actor.Name,
		CreatedAt: time.Now().UTC(),
	}
}

func checklistIndex(items []domain.ChecklistItem, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func patchedTaskFields(in ports.UpdateTaskInput) string {
	var fields []string
	if in.Title != nil {
		fields = append(fields, "title")
	}
	if in.Description != nil {
		fields = append(fields, "description")
	}
	if in.Status != nil {
		fields = append(fields, "status")
	}
	if in.Priority != nil {
		fields = append(fields, "priority")
	}
	if in.ProjectID != nil {
		fields = append(fields, "projectId")
	}
	if in.Assignee != nil {
		fields = append(fields, "assignee")
	}
	if in.Manager != nil {
		fields = append(fields, "manager")
	}
	if in.DueDate != nil {
		fields = append(fields, "dueDate")
	}
	return strings.Join(fields, ",")
}
