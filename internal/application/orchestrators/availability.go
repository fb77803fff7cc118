package orchestrators

import (
	"context"
	"log/slog"

	"turfease/internal/domain/availability"
	"turfease/internal/domain/booking"
)

// BookingServiceForAvailability defines the backend surface needed to
// compute slot availability.
type BookingServiceForAvailability interface {
	All(ctx context.Context) ([]booking.Record, error)
}

// BookedSlotsInput selects the turf and date being checked.
type BookedSlotsInput struct {
	Turf string
	Date string
}

// QueryBookedSlots fetches the full booking list and reduces it to the set
// of composed times taken for the given turf and date. A fetch failure
// degrades to an empty set — every slot then renders as available, which
// matches treating a malformed booking payload as "nothing booked".
func QueryBookedSlots(ctx context.Context, input BookedSlotsInput, bookings BookingServiceForAvailability) availability.BookedSet {
	records, err := bookings.All(ctx)
	if err != nil {
		slog.Warn("availability_fetch_failed", "turf", input.Turf, "date", input.Date, "error", err.Error())
		return availability.BookedSet{}
	}
	entries := make([]availability.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.AvailabilityEntry())
	}
	return availability.ComputeBookedSet(entries, input.Turf, input.Date)
}
