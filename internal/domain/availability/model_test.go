package availability_test

import (
	"testing"

	"turfease/internal/domain/availability"
)

// TestComposedTime tests the slot/booking join key format.
func TestComposedTime(t *testing.T) {
	got := availability.ComposedTime("2025-09-11", "10:00")
	if got != "2025-09-11T10:00:00" {
		t.Errorf("ComposedTime() = %q, want %q", got, "2025-09-11T10:00:00")
	}
}

// TestComputeBookedSet_MatchingBooking tests that a booking for the turf and
// date marks the corresponding slot as booked.
func TestComputeBookedSet_MatchingBooking(t *testing.T) {
	bookings := []availability.Entry{
		{Turf: "Greenfield Arena", Date: "2025-09-11", Time: "2025-09-11T10:00:00"},
	}
	set := availability.ComputeBookedSet(bookings, "Greenfield Arena", "2025-09-11")

	slot := availability.Slot{ID: "s1", StartTime: "10:00", EndTime: "11:00"}
	if !set.IsBooked(slot, "2025-09-11") {
		t.Error("expected 10:00 slot to be booked")
	}

	free := availability.Slot{ID: "s2", StartTime: "11:00", EndTime: "12:00"}
	if set.IsBooked(free, "2025-09-11") {
		t.Error("expected 11:00 slot to be free")
	}
}

// TestComputeBookedSet_EmptyList tests that no bookings means every slot is
// bookable.
func TestComputeBookedSet_EmptyList(t *testing.T) {
	set := availability.ComputeBookedSet(nil, "Greenfield Arena", "2025-09-11")
	if len(set) != 0 {
		t.Errorf("expected empty set, got %d entries", len(set))
	}
	slot := availability.Slot{ID: "s1", StartTime: "10:00", EndTime: "11:00"}
	if set.IsBooked(slot, "2025-09-11") {
		t.Error("expected slot to be bookable with empty booking list")
	}
}

// TestComputeBookedSet_Filtering tests the turf and date filters.
func TestComputeBookedSet_Filtering(t *testing.T) {
	bookings := []availability.Entry{
		{Turf: "Greenfield Arena", Date: "2025-09-11", Time: "2025-09-11T10:00:00"},
		{Turf: "Other Turf", Date: "2025-09-11", Time: "2025-09-11T11:00:00"},
		{Turf: "Greenfield Arena", Date: "2025-09-12", Time: "2025-09-12T12:00:00"},
	}
	set := availability.ComputeBookedSet(bookings, "Greenfield Arena", "2025-09-11")

	if len(set) != 1 {
		t.Fatalf("expected 1 booked time, got %d", len(set))
	}
	if !set.Contains("2025-09-11T10:00:00") {
		t.Error("expected 2025-09-11T10:00:00 to be in the set")
	}
	if set.Contains("2025-09-11T11:00:00") {
		t.Error("other turf's booking leaked into the set")
	}
	if set.Contains("2025-09-12T12:00:00") {
		t.Error("other date's booking leaked into the set")
	}
}

// TestBookedSet_ExactStringMatch tests that comparison does not normalize
// time formats.
func TestBookedSet_ExactStringMatch(t *testing.T) {
	bookings := []availability.Entry{
		// Seconds already present in a different shape: no normalization.
		{Turf: "Greenfield Arena", Date: "2025-09-11", Time: "2025-09-11T10:00"},
	}
	set := availability.ComputeBookedSet(bookings, "Greenfield Arena", "2025-09-11")
	slot := availability.Slot{ID: "s1", StartTime: "10:00", EndTime: "11:00"}
	if set.IsBooked(slot, "2025-09-11") {
		t.Error("composed time with :00 suffix must not match a bare HH:MM value")
	}
}
