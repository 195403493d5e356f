package ports

import (
	"context"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

// TaskPatch carries a partial update; nil fields are left untouched. The
// repository merges it over the stored record and re-stamps UpdatedAt.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	ProjectID   *string
	Assignee    *string
	Manager     *string
	DueDate     *string
	Checklist   *[]domain.ChecklistItem
	Comments    *[]domain.Comment
}

// TaskRepository persists the tasks collection via whole-collection
// read/modify/write. Create assigns a fresh id and stamps both timestamps;
// Update re-stamps UpdatedAt unconditionally.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// ProjectPatch mirrors TaskPatch for projects.
type ProjectPatch struct {
	Name                   *string
	Description            *string
	ContractNumber         *string
	FiscalYear             *string
	ProjectStartDate       *string
	ContractExpirationDate *string
	Owner                  *string
	Manager                *string
	Status                 *domain.TaskStatus
}

// ProjectRepository persists the projects collection. The
// delete-with-referencing-tasks guard lives in the service layer, which sees
// both collections.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// NotificationRepository persists the notifications collection. The canonical
// order is newest-first: Create prepends.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.Notification, error)
	SetDeleted(ctx context.Context, id string, deleted bool) (*domain.Notification, error)
	Purge(ctx context.Context, id string) error
}

// LogRepository persists the append-only audit log, newest-first,
// ring-bounded to domain.MaxLogEntries.
type LogRepository interface {
	List(ctx context.Context) ([]domain.LogEntry, error)
	Append(ctx context.Context, e *domain.LogEntry) error
}

// UserPatch carries a partial user update.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Avatar       *string
}

// UserRepository persists the users collection. Users are created at seed or
// import time only; the core never deletes them.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	SaveAll(ctx context.Context, users []domain.User) error
}

// SessionRepository holds the single current-user document (user minus
// password hash), written on login and removed on logout.
type SessionRepository interface {
	Current(ctx context.Context) (*domain.User, error)
	SetCurrent(ctx context.Context, u domain.User) error
	Clear(ctx context.Context) error
}

// SettingsRepository holds the single settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// AuditEntry describes one mutation for the audit trail.
type AuditEntry struct {
	Type        string
	Action      string
	Description string
	Metadata    map[string]string
}

// Auditor records exactly one audit entry per successful mutating operation.
// Recording is best-effort: failures are logged, never surfaced.
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry)
}
