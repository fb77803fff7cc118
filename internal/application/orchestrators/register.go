package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/identity"
)

// UserServiceForRegister defines the backend surface needed by
// registration.
type UserServiceForRegister interface {
	Register(ctx context.Context, fullName, phone, email, password string) error
}

// RegisterInput carries input for the registration orchestrator.
type RegisterInput struct {
	FullName string
	Phone    string
	Email    string
	Password string
}

// RegisterDeps holds dependencies for registration.
type RegisterDeps struct {
	Users    UserServiceForRegister
	Sessions session.Store
	Token    string
}

// Registration errors
var (
	ErrRegisterFieldsRequired = errors.New("full name, phone, email and password are required")
	ErrRegisterInvalidPhone   = errors.New("phone number must be up to 10 digits")
)

var phonePattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// ExecuteUserRegister creates a backend account and stores the profile
// fields for later prefill. Registration does not log the user in — no
// token is written.
func ExecuteUserRegister(ctx context.Context, input RegisterInput, deps RegisterDeps) error {
	if input.FullName == "" || input.Phone == "" || input.Email == "" || input.Password == "" {
		return ErrRegisterFieldsRequired
	}
	if !phonePattern.MatchString(input.Phone) {
		return ErrRegisterInvalidPhone
	}

	if err := deps.Users.Register(ctx, input.FullName, input.Phone, input.Email, input.Password); err != nil {
		slog.Info("auth_event", "event", "register_failed", "email", input.Email)
		return err
	}

	id := identity.Identity{FullName: input.FullName, Email: input.Email, Phone: input.Phone}
	if err := persistIdentity(ctx, deps.Sessions, deps.Token, id); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "register_success", "email", input.Email)
	return nil
}
