package orchestrators

import (
	"context"
	"log/slog"

	"turfease/internal/domain/booking"
	"turfease/internal/domain/feedback"
)

// FeedbackServiceForDashboard defines the backend surface of the feedback
// panel.
type FeedbackServiceForDashboard interface {
	List(ctx context.Context) ([]feedback.Feedback, error)
}

// BookingServiceForDashboard defines the backend surface of the bookings
// panel.
type BookingServiceForDashboard interface {
	All(ctx context.Context) ([]booking.Record, error)
	Update(ctx context.Context, id, name, turfName, timeValue string) error
}

// QueryFeedbackList fetches every contact-form submission for the admin
// feedback panel.
func QueryFeedbackList(ctx context.Context, contacts FeedbackServiceForDashboard) ([]feedback.Feedback, error) {
	return contacts.List(ctx)
}

// QueryBookingList fetches every booking for the admin bookings panel.
func QueryBookingList(ctx context.Context, bookings BookingServiceForDashboard) ([]booking.Record, error) {
	return bookings.All(ctx)
}

// UpdateBookingInput carries the editable fields of one booking row.
type UpdateBookingInput struct {
	ID   string
	Name string
	Turf string
	Time string
}

// ExecuteUpdateBooking rewrites a booking's name, turf and time from the
// admin panel.
func ExecuteUpdateBooking(ctx context.Context, input UpdateBookingInput, bookings BookingServiceForDashboard) error {
	if err := bookings.Update(ctx, input.ID, input.Name, input.Turf, input.Time); err != nil {
		slog.Info("booking_event", "event", "update_failed", "id", input.ID, "error", err.Error())
		return err
	}
	slog.Info("booking_event", "event", "updated", "id", input.ID)
	return nil
}
