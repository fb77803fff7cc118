package orchestrators

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/booking"
	"turfease/internal/domain/identity"
)

// pendingBookingKey holds the serialized confirmation snapshot in the
// Session Store between the propose and confirm requests.
const pendingBookingKey = "pendingBooking"

// BookingServiceForSubmit defines the backend surface needed by booking
// submission.
type BookingServiceForSubmit interface {
	Create(ctx context.Context, token string, b booking.Booking) error
}

// SubmitBookingDeps holds dependencies for the booking flow.
type SubmitBookingDeps struct {
	Bookings   BookingServiceForSubmit
	Sessions   session.Store
	Token      string
	GenerateID func() string
}

// ErrNoPendingBooking is returned when confirm or cancel arrives without a
// proposed booking — confirmation is mandatory and cannot be skipped.
var ErrNoPendingBooking = errors.New("no booking is awaiting confirmation")

// ExecuteProposeBooking validates the booking and parks its snapshot for the
// confirmation step: Idle -> PendingConfirmation.
func ExecuteProposeBooking(ctx context.Context, b booking.Booking, deps SubmitBookingDeps) (*booking.Submission, error) {
	sub := booking.NewSubmission(deps.GenerateID())
	if err := sub.Propose(b); err != nil {
		return nil, err
	}

	buf, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	if err := deps.Sessions.Set(ctx, deps.Token, pendingBookingKey, string(buf)); err != nil {
		return nil, err
	}
	return sub, nil
}

// PendingBooking returns the parked snapshot, or ErrNoPendingBooking.
func PendingBooking(ctx context.Context, deps SubmitBookingDeps) (booking.Booking, error) {
	raw, err := deps.Sessions.Get(ctx, deps.Token, pendingBookingKey)
	if err != nil {
		return booking.Booking{}, err
	}
	if raw == "" {
		return booking.Booking{}, ErrNoPendingBooking
	}
	var b booking.Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return booking.Booking{}, ErrNoPendingBooking
	}
	return b, nil
}

// ExecuteConfirmBooking submits the parked booking on explicit user
// confirmation: PendingConfirmation -> Submitting -> {Succeeded, Failed}.
// On success the booker's details are persisted to the Session Store for
// future prefill (idempotent). Whatever the outcome, the pending snapshot is
// consumed — a failed submission sends the user back to the details form.
func ExecuteConfirmBooking(ctx context.Context, deps SubmitBookingDeps) (*booking.Submission, error) {
	pending, err := PendingBooking(ctx, deps)
	if err != nil {
		return nil, err
	}

	sub := booking.NewSubmission(deps.GenerateID())
	if err := sub.Propose(pending); err != nil {
		return nil, err
	}
	b, err := sub.Confirm()
	if err != nil {
		return nil, err
	}

	_ = deps.Sessions.Delete(ctx, deps.Token, pendingBookingKey)

	authToken, _ := deps.Sessions.Get(ctx, deps.Token, identity.KeyUserToken)
	if authToken == "" {
		authToken, _ = deps.Sessions.Get(ctx, deps.Token, identity.KeyToken)
	}

	if err := deps.Bookings.Create(ctx, authToken, b); err != nil {
		sub.Fail(err.Error())
		slog.Info("booking_event", "event", "submit_failed", "turf", b.Turf, "time", b.ComposedTime(), "error", err.Error())
		return sub, nil
	}

	if err := sub.Succeed(); err != nil {
		return nil, err
	}
	id := identity.Identity{FullName: b.Name, Email: b.Email, Phone: b.Phone}
	if err := persistIdentity(ctx, deps.Sessions, deps.Token, id); err != nil {
		slog.Debug("booking_identity_persist_failed", "error", err.Error())
	}
	slog.Info("booking_event", "event", "submit_success", "turf", b.Turf, "time", b.ComposedTime())
	return sub, nil
}

// ExecuteCancelBooking abandons the pending snapshot with no side effects:
// PendingConfirmation -> Idle.
func ExecuteCancelBooking(ctx context.Context, deps SubmitBookingDeps) error {
	if _, err := PendingBooking(ctx, deps); err != nil {
		return err
	}
	return deps.Sessions.Delete(ctx, deps.Token, pendingBookingKey)
}
