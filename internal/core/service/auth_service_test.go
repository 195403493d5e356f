package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bigitcorp/taskboard/internal/core/domain"
)

const testSecret = "test-secret"

func seededUsers(t *testing.T) *stubUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &stubUserRepo{users: []domain.User{
		{ID: "user1", Name: "Nat", Email: "admin@example.com", PasswordHash: string(hash), Role: domain.RoleAdmin},
	}}
}

func TestAuthService_Login(t *testing.T) {
	users := seededUsers(t)
	sessions := &stubSessionRepo{}
	audit := &stubAuditor{}
	svc := NewAuthService(users, sessions, audit, zerolog.Nop(), testSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "admin@example.com", "123456")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("returned user must not carry the password hash")
	}
	if sessions.current == nil || sessions.current.ID != "user1" {
		t.Error("expected current-user document to be written")
	}
	if len(audit.entries) != 1 || audit.entries[0].Type != domain.LogAuth {
		t.Errorf("expected one auth audit entry, got %+v", audit.entries)
	}

	// The token must verify against the same secret and carry the subject.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != "user1" || claims["name"] != "Nat" {
		t.Errorf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	users := seededUsers(t)
	sessions := &stubSessionRepo{}
	audit := &stubAuditor{}
	svc := NewAuthService(users, sessions, audit, zerolog.Nop(), testSecret, time.Hour)

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@example.com", "nope"},
		{"unknown email", "ghost@example.com", "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
			}
		})
	}

	if sessions.current != nil {
		t.Error("failed logins must not write a session")
	}
	if len(audit.entries) != 0 {
		t.Error("failed logins must not be audited")
	}
}

func TestAuthService_LogoutAndCurrentUser(t *testing.T) {
	users := seededUsers(t)
	sessions := &stubSessionRepo{}
	svc := NewAuthService(users, sessions, &stubAuditor{}, zerolog.Nop(), testSecret, time.Hour)
	ctx := context.Background()

	if _, err := svc.CurrentUser(ctx); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated before login, got: %v", err)
	}

	if _, _, err := svc.Login(ctx, "admin@example.com", "123456"); err != nil {
		t.Fatal(err)
	}
	current, err := svc.CurrentUser(ctx)
	if err != nil || current.ID != "user1" {
		t.Fatalf("expected current user user1, got %v (%v)", current, err)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser(ctx); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Error("expected ErrNotAuthenticated after logout")
	}

	// Logging out while signed out is a no-op.
	if err := svc.Logout(ctx); err != nil {
		t.Errorf("double logout must not fail, got: %v", err)
	}
}
