package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// BoardService exposes the kanban read model and the drag-and-drop move.
type BoardService struct {
	repo   ports.TaskRepository
	audit  ports.Auditor
	logger zerolog.Logger
}

func NewBoardService(repo ports.TaskRepository, audit ports.Auditor, logger zerolog.Logger) *BoardService {
	return &BoardService{repo: repo, audit: audit, logger: logger}
}

func (s *BoardService) Board(ctx context.Context, f ports.BoardFilter) (*ports.Board, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByStatus(FilterTasks(tasks, f)), nil
}

// MoveTask sets the status unconditionally. A move to the current lane still
// re-stamps UpdatedAt and records an audit entry.
func (s *BoardService) MoveTask(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	updated, err := s.repo.Update(ctx, taskID, ports.TaskPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogTask,
		Action:      "move task",
		Description: fmt.Sprintf("moved task %q to %s", updated.Title, status),
		Metadata:    map[string]string{"taskId": taskID, "status": string(status)},
	})
	s.logger.Debug().Str("task_id", taskID).Str("status", string(status)).Msg("task moved")
	return updated, nil
}

// FilterTasks applies the filter criteria with AND semantics, preserving the
// input order. Search matches case-insensitively on title or description; an
// empty filter returns the input unchanged.
func FilterTasks(tasks []domain.Task, f ports.BoardFilter) []domain.Task {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" && f.ProjectID == "" && f.Priority == "" && f.Assignee == "" {
		return tasks
	}

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Assignee != "" && t.Assignee != f.Assignee {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GroupByStatus partitions tasks into the three lanes, keeping the relative
// order within each lane. Tasks with an unknown status are dropped.
func GroupByStatus(tasks []domain.Task) *ports.Board {
	board := &ports.Board{
		Todo:       []domain.Task{},
		InProgress: []domain.Task{},
		Done:       []domain.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusTodo:
			board.Todo = append(board.Todo, t)
		case domain.StatusInProgress:
			board.InProgress = append(board.InProgress, t)
		case domain.StatusDone:
			board.Done = append(board.Done, t)
		}
	}
	return board
}
