package ports

import (
	"context"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

// AuthService implements login/logout over the users collection. Login
// verifies the password, writes the current-user document (minus the
// password hash) and issues a bearer token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// SettingsService covers the settings document and current-user profile
// operations.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) (domain.Settings, error)
	UpdateProfile(ctx context.Context, name, email string) (*domain.User, error)
	ChangePassword(ctx context.Context, current, newPassword string) error
	// ClearData wipes tasks, projects, notifications, logs and users while
	// keeping the current session and settings.
	ClearData(ctx context.Context) error
}
