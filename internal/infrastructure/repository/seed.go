package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

const demoPassword = "123456"

// Seed initializes demo users, projects and tasks on first run, when the
// users collection has never been written. Subsequent runs are no-ops.
func Seed(ctx context.Context, store ports.Store, log zerolog.Logger) error {
	var users []domain.User
	err := store.Load(ctx, ports.CollectionUsers, &users)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ports.ErrKeyNotFound) {
		return fmt.Errorf("seed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	now := time.Now()

	demo := []domain.User{
		{ID: "user1", Name: "Nat", Email: "admin@example.com", PasswordHash: string(hash), Avatar: "👨‍💼", Role: domain.RoleAdmin},
		{ID: "user2", Name: "Gun", Email: "manager@example.com", PasswordHash: string(hash), Avatar: "👔", Role: domain.RoleManager},
		{ID: "user3", Name: "Boat", Email: "boat@example.com", PasswordHash: string(hash), Avatar: "👨‍🎨", Role: domain.RoleUser},
		{ID: "user4", Name: "Bon", Email: "bon@example.com", PasswordHash: string(hash), Avatar: "👩‍🔧", Role: domain.RoleUser},
		{ID: "user5", Name: "Ao", Email: "ao@example.com", PasswordHash: string(hash), Avatar: "👔", Role: domain.RoleManager},
	}

	projects := demoProjects(now)
	tasks := demoTasks(now)

	docs := map[string]any{
		ports.CollectionUsers:         demo,
		ports.CollectionTasks:         tasks,
		ports.CollectionProjects:      projects,
		ports.CollectionNotifications: []domain.Notification{},
		ports.CollectionLogs:          []domain.LogEntry{},
		ports.CollectionSettings:      domain.DefaultSettings(),
	}
	if err := store.ReplaceAll(ctx, docs); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info().
		Int("users", len(demo)).
		Int("projects", len(projects)).
		Int("tasks", len(tasks)).
		Msg("seeded demo data")
	return nil
}

// demoProjects spans the status cycle: active contracts in progress and one
// already delivered.
func demoProjects(now time.Time) []domain.Project {
	return []domain.Project{
		{
			ID:                     "proj1",
			Name:                   "Warehouse Platform",
			Description:            "Inventory management system for the central warehouse",
			ContractNumber:         "103/2025",
			FiscalYear:             "2025",
			ProjectStartDate:       calendarDay(now, -120),
			ContractExpirationDate: calendarDay(now, 180),
			Owner:                  "user1",
			Manager:                "user1",
			Status:                 domain.StatusInProgress,
			CreatedAt:              now.AddDate(0, 0, -120),
			UpdatedAt:              now.AddDate(0, 0, -120),
		},
		{
			ID:                     "proj2",
			Name:                   "Corporate Website",
			Description:            "Redesign of the public company site",
			ContractNumber:         "4/2026",
			FiscalYear:             "2026",
			ProjectStartDate:       calendarDay(now, -60),
			ContractExpirationDate: calendarDay(now, 300),
			Owner:                  "user2",
			Manager:                "user2",
			Status:                 domain.StatusInProgress,
			CreatedAt:              now.AddDate(0, 0, -60),
			UpdatedAt:              now.AddDate(0, 0, -60),
		},
		{
			ID:                     "proj3",
			Name:                   "CRM Rollout",
			Description:            "Customer record migration into the new CRM",
			ContractNumber:         "79/2025",
			FiscalYear:             "2025",
			ProjectStartDate:       calendarDay(now, -90),
			ContractExpirationDate: calendarDay(now, 90),
			Owner:                  "user3",
			Manager:                "user3",
			Status:                 domain.StatusInProgress,
			CreatedAt:              now.AddDate(0, 0, -90),
			UpdatedAt:              now.AddDate(0, 0, -90),
		},
		{
			ID:                     "proj4",
			Name:                   "VPN Renewal",
			Description:            "Backup VPN contract renewal, delivered last quarter",
			ContractNumber:         "70/2024",
			FiscalYear:             "2024",
			ProjectStartDate:       calendarDay(now, -400),
			ContractExpirationDate: calendarDay(now, -30),
			Owner:                  "user1",
			Manager:                "user1",
			Status:                 domain.StatusDone,
			CreatedAt:              now.AddDate(0, 0, -400),
			UpdatedAt:              now.AddDate(0, 0, -30),
		},
	}
}

// demoTasks covers all three lanes, a finished checklist, a mixed checklist
// with an item-level comment thread, and due dates staggered so the due-soon
// sweep has something to report on first run.
func demoTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID:          "task1",
			Title:       "Design the database schema",
			Description: "Schema and ER diagram for the warehouse platform",
			Status:      domain.StatusDone,
			Priority:    domain.PriorityHigh,
			ProjectID:   "proj1",
			Assignee:    "user1",
			Manager:     "user1",
			DueDate:     calendarDay(now, -14),
			Checklist: []domain.ChecklistItem{
				{ID: "cl1", Text: "Draw the ER diagram", Completed: true, Comments: []domain.Comment{}, CreatedAt: now.AddDate(0, 0, -40)},
				{ID: "cl2", Text: "Review the schema with the team", Completed: true, Comments: []domain.Comment{}, CreatedAt: now.AddDate(0, 0, -40)},
			},
			Comments: []domain.Comment{
				{ID: "comm1", Text: "Design is done, waiting on review", UserID: "user1", UserName: "Nat", CreatedAt: now.AddDate(0, 0, -20)},
			},
			CreatedAt: now.AddDate(0, 0, -45),
			UpdatedAt: now.AddDate(0, 0, -14),
		},
		{
			ID:          "task2",
			Title:       "Build the backend API",
			Description: "REST endpoints for the warehouse platform",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			ProjectID:   "proj1",
			Assignee:    "user2",
			Manager:     "user1",
			DueDate:     calendarDay(now, 14),
			Checklist: []domain.ChecklistItem{
				{
					ID: "cl3", Text: "User authentication endpoints", Completed: true,
					Comments: []domain.Comment{
						{ID: "clcomm1", Text: "Bearer tokens, 24h expiry", UserID: "user2", UserName: "Gun", CreatedAt: now.AddDate(0, 0, -10)},
					},
					CreatedAt: now.AddDate(0, 0, -25),
				},
				{ID: "cl4", Text: "Product management endpoints", Completed: false, Comments: []domain.Comment{}, CreatedAt: now.AddDate(0, 0, -20)},
			},
			Comments:  []domain.Comment{},
			CreatedAt: now.AddDate(0, 0, -25),
			UpdatedAt: now.AddDate(0, 0, -10),
		},
		{
			ID:          "task3",
			Title:       "Draft the website mockups",
			Description: "Home and landing page mockups for the redesign",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityMedium,
			ProjectID:   "proj2",
			Assignee:    "user3",
			Manager:     "user1",
			DueDate:     calendarDay(now, 2),
			Checklist:   []domain.ChecklistItem{},
			Comments: []domain.Comment{
				{ID: "comm2", Text: "Working on the home page mockup", UserID: "user3", UserName: "Boat", CreatedAt: now.AddDate(0, 0, -3)},
			},
			CreatedAt: now.AddDate(0, 0, -30),
			UpdatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID:          "task4",
			Title:       "Migrate customer records",
			Description: "Move legacy customer data into the CRM",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityHigh,
			ProjectID:   "proj3",
			Assignee:    "user1",
			Manager:     "user3",
			DueDate:     calendarDay(now, 1),
			Checklist:   []domain.ChecklistItem{},
			Comments:    []domain.Comment{},
			CreatedAt:   now.AddDate(0, 0, -15),
			UpdatedAt:   now.AddDate(0, 0, -15),
		},
		{
			ID:          "task5",
			Title:       "Plan the mobile companion app",
			Description: "Requirements and scoping for a mobile client",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityLow,
			ProjectID:   "proj2",
			Assignee:    "user4",
			Manager:     "user5",
			DueDate:     calendarDay(now, 30),
			Checklist:   []domain.ChecklistItem{},
			Comments:    []domain.Comment{},
			CreatedAt:   now.AddDate(0, 0, -7),
			UpdatedAt:   now.AddDate(0, 0, -7),
		},
	}
}

func calendarDay(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format("2006-01-02")
}
