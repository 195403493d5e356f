package ports

import (
	"context"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Name                   string
	Description            string
	ContractNumber         string
	FiscalYear             string
	ProjectStartDate       string
	ContractExpirationDate string
	Owner                  string
	Manager                string
	Status                 domain.TaskStatus
}

// UpdateProjectInput is the partial update accepted by UpdateProject.
type UpdateProjectInput struct {
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

// ProjectService covers project CRUD, the status toggle cycle, and the
// delete guard: a project with at least one referencing task cannot be
// deleted.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ToggleProjectStatus(ctx context.Context, id string) (*domain.Project, error)
}
