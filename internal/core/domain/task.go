package domain

import "time"

// TaskStatus is one of the three fixed kanban lanes.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether s names a known lane.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next returns the following status in the todo → inprogress → done → todo
// cycle. Unknown statuses fall back to inprogress.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	case StatusDone:
		return StatusTodo
	}
	return StatusInProgress
}

// TaskPriority is the urgency classification of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p names a known priority.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Comment is an append-only remark frozen at creation time. UserName is a
// snapshot of the author's name; it does not follow later renames.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	Text      string    `json:"text" bson:"text"`
	UserID    string    `json:"userId" bson:"user_id"`
	UserName  string    `json:"userName" bson:"user_name"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// ChecklistItem is an ordered sub-item owned exclusively by its parent task.
// Its comment thread is independent of the task's own comments.
type ChecklistItem struct {
	ID        string    `json:"id" bson:"id"`
	Text      string    `json:"text" bson:"text"`
	Completed bool      `json:"completed" bson:"completed"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// Task is the central work item. ProjectID, Assignee and Manager are weak
// references to other collections: resolved by lookup at read time, dangling
// ids are tolerated.
type Task struct {
	ID          string          `json:"id" bson:"id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	Status      TaskStatus      `json:"status" bson:"status"`
	Priority    TaskPriority    `json:"priority" bson:"priority"`
	ProjectID   string          `json:"projectId,omitempty" bson:"project_id,omitempty"`
	Assignee    string          `json:"assignee,omitempty" bson:"assignee,omitempty"`
	Manager     string          `json:"manager,omitempty" bson:"manager,omitempty"`
	DueDate     string          `json:"dueDate,omitempty" bson:"due_date,omitempty"` // calendar date, "2006-01-02"
	Checklist   []ChecklistItem `json:"checklist" bson:"checklist"`
	Comments    []Comment       `json:"comments" bson:"comments"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updated_at"`
}

// ChecklistProgress returns the completed and total checklist item counts.
func (t *Task) ChecklistProgress() (completed, total int) {
	for _, item := range t.Checklist {
		if item.Completed {
			completed++
		}
	}
	return completed, len(t.Checklist)
}
