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

// ProjectRepository persists the projects collection.
type ProjectRepository struct {
	store ports.Store
	mu    *sync.Mutex
}

func (r *ProjectRepository) load(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := r.store.Load(ctx, ports.CollectionProjects, &projects); err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) save(ctx context.Context, projects []domain.Project) error {
	if err := r.store.Save(ctx, ports.CollectionProjects, projects); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = newID("proj")
	p.CreatedAt = now
	p.UpdatedAt = now

	projects = append(projects, *p)
	if err := r.save(ctx, projects); err != nil {
		return nil, err
	}
	created := *p
	return &created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range projects {
		if projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrProjectNotFound
	}

	p := &projects[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ContractNumber != nil {
		p.ContractNumber = *patch.ContractNumber
	}
	if patch.FiscalYear != nil {
		p.FiscalYear = *patch.FiscalYear
	}
	if patch.ProjectStartDate != nil {
		p.ProjectStartDate = *patch.ProjectStartDate
	}
	if patch.ContractExpirationDate != nil {
		p.ContractExpirationDate = *patch.ContractExpirationDate
	}
	if patch.Owner != nil {
		p.Owner = *patch.Owner
	}
	if patch.Manager != nil {
		p.Manager = *patch.Manager
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, projects); err != nil {
		return nil, err
	}
	updated := *p
	return &updated, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := projects[:0]
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrProjectNotFound
	}
	return r.save(ctx, kept)
}
