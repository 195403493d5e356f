package ports

import (
	"context"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task. Optional
// fields default-fill: status to todo, priority to medium, the weak
// references to empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	ProjectID   string
	Assignee    string
	Manager     string
	DueDate     string
}

// UpdateTaskInput is the partial update accepted by UpdateTask; nil fields
// are untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	ProjectID   *string
	Assignee    *string
	Manager     *string
	DueDate     *string
}

// TaskService covers task CRUD plus the checklist/comment engine. Checklist
// and comment mutations route through the task update path, so the task's
// UpdatedAt advances with every sub-item change.
type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error

	AddChecklistItem(ctx context.Context, taskID, text string) (*domain.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, taskID, itemID string) (*domain.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, taskID, itemID, text string) (*domain.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, taskID, itemID string) error

	AddComment(ctx context.Context, taskID, text string) (*domain.Comment, error)
	AddChecklistItemComment(ctx context.Context, taskID, itemID, text string) (*domain.Comment, error)
}

// BoardFilter carries the kanban filter criteria. Present criteria are
// AND-combined; empty ones are no-ops.
type BoardFilter struct {
	Search    string
	ProjectID string
	Priority  domain.TaskPriority
	Assignee  string
}

// Board is the three-lane grouping of the filtered task set, order-stable
// within each lane.
type Board struct {
	Todo       []domain.Task `json:"todo"`
	InProgress []domain.Task `json:"inprogress"`
	Done       []domain.Task `json:"done"`
}

// BoardService exposes the kanban read model and the single drag-and-drop
// transition.
type BoardService interface {
	Board(ctx context.Context, f BoardFilter) (*Board, error)
	// MoveTask sets the status unconditionally; any→any is legal, and a
	// same-status move still re-stamps and audits.
	MoveTask(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
}
