package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/identity"
)

// UserServiceForLogin defines the backend surface needed by the login
// orchestrators.
type UserServiceForLogin interface {
	Login(ctx context.Context, email, password string) (identity.Identity, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
}

// LoginInput carries input for the user login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginDeps holds dependencies for user login.
type LoginDeps struct {
	Users    UserServiceForLogin
	Sessions session.Store
	Token    string // Session Store token of the current visitor
}

var ErrMissingCredentials = errors.New("email and password are required")

// ExecuteUserLogin authenticates against the backend and persists the
// returned identity to the Session Store under the primary keys. Fields the
// response omitted fall back to what the user typed.
// PRE: deps.Token identifies the visitor's session
// POST: on success the Session Store holds userToken and any known profile fields
func ExecuteUserLogin(ctx context.Context, input LoginInput, deps LoginDeps) (identity.Identity, error) {
	if input.Email == "" || input.Password == "" {
		return identity.Identity{}, ErrMissingCredentials
	}

	id, err := deps.Users.Login(ctx, input.Email, input.Password)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email)
		return identity.Identity{}, err
	}
	if id.Email == "" {
		id.Email = input.Email
	}

	if err := persistIdentity(ctx, deps.Sessions, deps.Token, id); err != nil {
		return identity.Identity{}, err
	}
	slog.Info("auth_event", "event", "login_success", "email", id.Email)
	return id, nil
}

// AdminLoginInput carries input for the admin login orchestrator.
type AdminLoginInput struct {
	Username string
	Password string
}

// ExecuteAdminLogin authenticates an admin and stores the admin token under
// the legacy "token" key the dashboard checks.
func ExecuteAdminLogin(ctx context.Context, input AdminLoginInput, deps LoginDeps) error {
	if input.Username == "" || input.Password == "" {
		return ErrMissingCredentials
	}

	token, err := deps.Users.AdminLogin(ctx, input.Username, input.Password)
	if err != nil {
		slog.Info("auth_event", "event", "admin_login_failed", "username", input.Username)
		return err
	}

	if err := deps.Sessions.Set(ctx, deps.Token, identity.KeyToken, token); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "admin_login_success", "username", input.Username)
	return nil
}

// persistIdentity writes the identity's non-empty fields to the Session
// Store under the primary keys. Idempotent — rewriting unchanged values is
// safe.
func persistIdentity(ctx context.Context, store session.Store, token string, id identity.Identity) error {
	pairs := []struct{ key, value string }{
		{identity.KeyUserToken, id.Token},
		{identity.KeyUserName, id.FullName},
		{identity.KeyUserEmail, id.Email},
		{identity.KeyUserPhone, id.Phone},
	}
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if err := store.Set(ctx, token, p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}
