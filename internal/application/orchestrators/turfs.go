package orchestrators

import (
	"context"
	"log/slog"

	"turfease/internal/domain/turf"
)

// TurfServiceForAdmin defines the backend surface needed by turf
// administration.
type TurfServiceForAdmin interface {
	List(ctx context.Context) ([]turf.Turf, error)
	Create(ctx context.Context, t turf.Turf) error
	Update(ctx context.Context, t turf.Turf) error
	Delete(ctx context.Context, id string) error
}

// QueryTurfList fetches the current turf collection.
func QueryTurfList(ctx context.Context, turfs TurfServiceForAdmin) ([]turf.Turf, error) {
	return turfs.List(ctx)
}

// ExecuteCreateTurf validates and creates a turf. The caller re-fetches the
// list afterwards — the view is always refreshed from the backend rather than
// patched locally.
func ExecuteCreateTurf(ctx context.Context, t turf.Turf, turfs TurfServiceForAdmin) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := turfs.Create(ctx, t); err != nil {
		slog.Info("turf_event", "event", "create_failed", "name", t.Name, "error", err.Error())
		return err
	}
	slog.Info("turf_event", "event", "created", "name", t.Name)
	return nil
}

// ExecuteUpdateTurf validates and replaces an existing turf.
func ExecuteUpdateTurf(ctx context.Context, t turf.Turf, turfs TurfServiceForAdmin) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := turfs.Update(ctx, t); err != nil {
		slog.Info("turf_event", "event", "update_failed", "id", t.ID, "error", err.Error())
		return err
	}
	slog.Info("turf_event", "event", "updated", "id", t.ID)
	return nil
}

// ExecuteDeleteTurf removes a turf by id. Confirmation happens at the edge;
// by the time this runs the deletion is decided.
func ExecuteDeleteTurf(ctx context.Context, id string, turfs TurfServiceForAdmin) error {
	if err := turfs.Delete(ctx, id); err != nil {
		slog.Info("turf_event", "event", "delete_failed", "id", id, "error", err.Error())
		return err
	}
	slog.Info("turf_event", "event", "deleted", "id", id)
	return nil
}
