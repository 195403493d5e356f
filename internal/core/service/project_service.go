package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// ProjectService implements project CRUD, the status toggle cycle and the
// delete guard.
type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	audit    ports.Auditor
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, tasks ports.TaskRepository, audit ports.Auditor, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, audit: audit, logger: logger}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	project := &domain.Project{
		Name:                   name,
		Description:            in.Description,
		ContractNumber:         in.ContractNumber,
		FiscalYear:             in.FiscalYear,
		ProjectStartDate:       in.ProjectStartDate,
		ContractExpirationDate: in.ContractExpirationDate,
		Owner:                  in.Owner,
		Manager:                in.Manager,
		Status:                 status,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogProject,
		Action:      "create project",
		Description: "created project: " + created.Name,
		Metadata:    map[string]string{"projectId": created.ID},
	})
	s.logger.Info().Str("project_id", created.ID).Str("name", created.Name).Msg("project created")
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
	}

	patch := ports.ProjectPatch{
		Name:                   in.Name,
		Description:            in.Description,
		ContractNumber:         in.ContractNumber,
		FiscalYear:             in.FiscalYear,
		ProjectStartDate:       in.ProjectStartDate,
		ContractExpirationDate: in.ContractExpirationDate,
		Owner:                  in.Owner,
		Manager:                in.Manager,
		Status:                 in.Status,
	}

	updated, err := s.projects.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogProject,
		Action:      "update project",
		Description: "updated project: " + updated.Name,
		Metadata:    map[string]string{"projectId": id},
	})
	return updated, nil
}

// DeleteProject refuses to remove a project while any task still references
// it. A refused delete mutates nothing and records nothing.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ProjectID == id {
			return fmt.Errorf("%w: project %q has tasks assigned", domain.ErrProjectHasTasks, project.Name)
		}
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogProject,
		Action:      "delete project",
		Description: "deleted project: " + project.Name,
		Metadata:    map[string]string{"projectId": id},
	})
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// ToggleProjectStatus advances the project through the todo → inprogress →
// done → todo cycle.
func (s *ProjectService) ToggleProjectStatus(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := project.Status.Next()
	updated, err := s.projects.Update(ctx, id, ports.ProjectPatch{Status: &next})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogProject,
		Action:      "toggle status",
		Description: fmt.Sprintf("project %q is now %s", updated.Name, next),
		Metadata:    map[string]string{"projectId": id, "status": string(next)},
	})
	return updated, nil
}
