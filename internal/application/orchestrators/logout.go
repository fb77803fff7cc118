package orchestrators

import (
	"context"
	"log/slog"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/identity"
)

// LogoutDeps holds dependencies for logout.
type LogoutDeps struct {
	Sessions session.Store
	Token    string
}

// ExecuteLogout destroys the identity wholesale: every Session Store key,
// tokens and legacy aliases included.
func ExecuteLogout(ctx context.Context, deps LogoutDeps) error {
	if err := deps.Sessions.Clear(ctx, deps.Token); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "logout")
	return nil
}

// ExecuteAdminLogout drops only the admin token; a concurrently logged-in
// user identity survives, matching the original dashboard behavior.
func ExecuteAdminLogout(ctx context.Context, deps LogoutDeps) error {
	if err := deps.Sessions.Delete(ctx, deps.Token, identity.KeyToken); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "admin_logout")
	return nil
}
