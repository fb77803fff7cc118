package booking_test

import (
	"errors"
	"testing"

	"turfease/internal/domain/booking"
)

func validBooking() booking.Booking {
	return booking.Booking{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "9876543210",
		Date:      "2025-09-11",
		StartTime: "10:00",
		EndTime:   "11:00",
		Turf:      "Greenfield Arena",
	}
}

// TestBooking_Validate tests required-field validation.
func TestBooking_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*booking.Booking)
		wantErr error
	}{
		{"valid booking", func(b *booking.Booking) {}, nil},
		{"missing name", func(b *booking.Booking) { b.Name = "" }, booking.ErrNameRequired},
		{"missing email", func(b *booking.Booking) { b.Email = "" }, booking.ErrEmailRequired},
		{"malformed email", func(b *booking.Booking) { b.Email = "not-an-email" }, booking.ErrEmailRequired},
		{"missing phone", func(b *booking.Booking) { b.Phone = "" }, booking.ErrPhoneRequired},
		{"non-numeric phone", func(b *booking.Booking) { b.Phone = "98x6543210" }, booking.ErrPhoneRequired},
		{"phone too long", func(b *booking.Booking) { b.Phone = "98765432101" }, booking.ErrPhoneRequired},
		{"missing date", func(b *booking.Booking) { b.Date = "" }, booking.ErrSlotRequired},
		{"missing turf", func(b *booking.Booking) { b.Turf = "" }, booking.ErrSlotRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestBooking_ComposedTime tests the submission time format.
func TestBooking_ComposedTime(t *testing.T) {
	b := validBooking()
	if got := b.ComposedTime(); got != "2025-09-11T10:00:00" {
		t.Errorf("ComposedTime() = %q, want %q", got, "2025-09-11T10:00:00")
	}
}

// TestBooking_PhoneNumber tests the numeric coercion at submission time.
func TestBooking_PhoneNumber(t *testing.T) {
	b := validBooking()
	n, err := b.PhoneNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 9876543210 {
		t.Errorf("PhoneNumber() = %d, want 9876543210", n)
	}

	b.Phone = "abc"
	if _, err := b.PhoneNumber(); !errors.Is(err, booking.ErrInvalidPhone) {
		t.Errorf("expected ErrInvalidPhone, got %v", err)
	}
}

// TestRecord_Date tests date extraction from the composed time.
func TestRecord_Date(t *testing.T) {
	r := booking.Record{Time: "2025-09-11T10:00:00", Turf: "Greenfield Arena"}
	if got := r.Date(); got != "2025-09-11" {
		t.Errorf("Date() = %q, want 2025-09-11", got)
	}
	if got := (booking.Record{Time: "10:00"}).Date(); got != "" {
		t.Errorf("Date() without date part = %q, want empty", got)
	}

	e := r.AvailabilityEntry()
	if e.Turf != "Greenfield Arena" || e.Date != "2025-09-11" || e.Time != "2025-09-11T10:00:00" {
		t.Errorf("unexpected availability entry: %+v", e)
	}
}
