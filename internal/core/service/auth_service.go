package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// AuthService verifies credentials against the users collection, maintains
// the current-user document and issues bearer tokens.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	audit    ports.Auditor
	logger   zerolog.Logger

	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, audit ports.Auditor, logger zerolog.Logger, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		audit:     audit,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login checks the password, writes the current-user document and returns a
// signed token. An unknown email and a wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("email", email).Msg("failed login attempt")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.SetCurrent(ctx, *user); err != nil {
		return "", nil, err
	}

	actorCtx := ports.WithActor(ctx, ports.Actor{ID: user.ID, Name: user.Name, Email: user.Email})
	s.audit.Record(actorCtx, ports.AuditEntry{
		Type:        domain.LogAuth,
		Action:      "login",
		Description: user.Name + " signed in",
		Metadata:    map[string]string{"userId": user.ID},
	})
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	safe := user.WithoutPassword()
	return token, &safe, nil
}

// Logout clears the current-user document. Logging out while not logged in
// is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	user, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return nil
		}
		return err
	}

	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}

	s.audit.Record(ctx, ports.AuditEntry{
		Type:        domain.LogAuth,
		Action:      "logout",
		Description: user.Name + " signed out",
		Metadata:    map[string]string{"userId": user.ID},
	})
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.sessions.Current(ctx)
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
