package orchestrators

import (
	"context"
	"log/slog"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/identity"
)

// UserServiceForReconcile defines the backend surface needed by identity
// reconciliation.
type UserServiceForReconcile interface {
	List(ctx context.Context, token string) ([]identity.User, error)
}

// ReconcileDeps holds dependencies for identity reconciliation.
type ReconcileDeps struct {
	Users    UserServiceForReconcile
	Sessions session.Store
	Token    string
}

// ExecuteReconcileIdentity soft-fills missing identity fields from the
// backend user list. It is never fatal and never surfaced: any failure
// returns the locally resolved identity unchanged. The server fetch is
// skipped entirely when both name and phone are already present.
// POST: filled fields are persisted back to the Session Store
func ExecuteReconcileIdentity(ctx context.Context, deps ReconcileDeps) identity.Identity {
	snap, err := deps.Sessions.Snapshot(ctx, deps.Token)
	if err != nil {
		slog.Debug("reconcile_skipped", "reason", "snapshot_failed", "error", err.Error())
		return identity.Identity{}
	}
	local := identity.Resolve(snap)

	if local.Token == "" || local.Email == "" {
		return local
	}
	if !identity.NeedsReconcile(local) {
		return local
	}

	users, err := deps.Users.List(ctx, local.Token)
	if err != nil {
		slog.Debug("reconcile_skipped", "reason", "user_list_failed", "error", err.Error())
		return local
	}

	filled, changed := identity.Reconcile(local, users, local.Email)
	if !changed {
		return local
	}
	if err := persistIdentity(ctx, deps.Sessions, deps.Token, filled); err != nil {
		slog.Debug("reconcile_persist_failed", "error", err.Error())
	}
	return filled
}
