package orchestrators

import (
	"context"
	"log/slog"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/booking"
	"turfease/internal/domain/identity"
)

// BookingServiceForProfile defines the backend surface of the profile's
// booking history.
type BookingServiceForProfile interface {
	SearchByEmail(ctx context.Context, email string) ([]booking.Record, error)
}

// ProfileDeps holds dependencies for the profile query.
type ProfileDeps struct {
	Users    UserServiceForReconcile
	Bookings BookingServiceForProfile
	Sessions session.Store
	Token    string
}

// Profile is everything the profile screen renders.
type Profile struct {
	Identity identity.Identity
	Bookings []booking.Record
}

// QueryProfile assembles the profile view: the session identity, refreshed
// against the backend user list when possible, plus the booking history for
// the resolved email. Both backend calls degrade softly — a failed user
// lookup falls back to the session identity, and a failed booking search
// renders an empty history.
func QueryProfile(ctx context.Context, deps ProfileDeps) Profile {
	id := ExecuteReconcileIdentity(ctx, ReconcileDeps{
		Users:    deps.Users,
		Sessions: deps.Sessions,
		Token:    deps.Token,
	})

	p := Profile{Identity: id}
	if id.Email == "" {
		return p
	}

	records, err := deps.Bookings.SearchByEmail(ctx, id.Email)
	if err != nil {
		slog.Debug("profile_bookings_failed", "email", id.Email, "error", err.Error())
		return p
	}
	p.Bookings = records
	return p
}
