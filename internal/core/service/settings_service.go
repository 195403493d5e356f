package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

const minPasswordLength = 6

// SettingsService covers the settings document and current-user profile
// operations.
type SettingsService struct {
	settings ports.SettingsRepository
	users    ports.UserRepository
	sessions ports.SessionRepository
	store    ports.Store
	audit    ports.Auditor
	logger   zerolog.Logger
}

func NewSettingsService(settings ports.SettingsRepository, users ports.UserRepository, sessions ports.SessionRepository, store ports.Store, audit ports.Auditor, logger zerolog.Logger) *SettingsService {
	return &SettingsService{settings: settings, users: users, sessions: sessions, store: store, audit: audit, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, in domain.Settings) (domain.Settings, error) {
	if in.Theme != "light" && in.Theme != "dark" {
		return domain.Settings{}, fmt.Errorf("%w: theme must be light or dark", domain.ErrValidation)
	}
	if err := s.settings.Save(ctx, in); err != nil {
		return domain.Settings{}, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogSettings,
		Action:      "update settings",
		Description: "updated settings",
		Metadata:    map[string]string{"theme": in.Theme, "notifications": fmt.Sprintf("%t", in.Notifications)},
	})
	return in, nil
}

// UpdateProfile changes the current user's name and email in the users
// collection and refreshes the session document so both stay in sync.
func (s *SettingsService) UpdateProfile(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}

	current, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, current.ID, ports.UserPatch{Name: &name, Email: &email})
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetCurrent(ctx, *updated); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogSettings,
		Action:      "update profile",
		Description: "updated profile: " + updated.Name,
		Metadata:    map[string]string{"userId": updated.ID},
	})
	safe := updated.WithoutPassword()
	return &safe, nil
}

// ChangePassword verifies the current password before storing a bcrypt hash
// of the new one.
func (s *SettingsService) ChangePassword(ctx context.Context, current, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	sessionUser, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	// The session document has no hash; read the full record.
	user, err := s.users.GetByID(ctx, sessionUser.ID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)
	if _, err := s.users.Update(ctx, user.ID, ports.UserPatch{PasswordHash: &hashStr}); err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogSettings,
		Action:      "change password",
		Description: "changed password: " + user.Name,
		Metadata:    map[string]string{"userId": user.ID},
	})
	return nil
}

// ClearData wipes tasks, projects, notifications, logs and users while
// keeping the current session and settings documents.
func (s *SettingsService) ClearData(ctx context.Context) error {
	err := s.store.ReplaceAll(ctx, map[string]any{
		ports.CollectionUsers:         []domain.User{},
		ports.CollectionTasks:         []domain.Task{},
		ports.CollectionProjects:      []domain.Project{},
		ports.CollectionNotifications: []domain.Notification{},
		ports.CollectionLogs:          []domain.LogEntry{},
	})
	if err != nil {
		return err
	}

	s.logger.Warn().Msg("all application data cleared")
	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogSettings,
		Action:      "clear data",
		Description: "cleared all application data",
	})
	return nil
}
