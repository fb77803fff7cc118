package booking_test

import (
	"errors"
	"testing"

	"turfease/internal/domain/booking"
)

// TestSubmission_HappyPath tests Idle -> PendingConfirmation -> Submitting ->
// Succeeded.
func TestSubmission_HappyPath(t *testing.T) {
	s := booking.NewSubmission("sub-1")
	if s.State != booking.Idle {
		t.Fatalf("new submission state = %v, want Idle", s.State)
	}

	if err := s.Propose(validBooking()); err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	if s.State != booking.PendingConfirmation {
		t.Fatalf("state = %v, want PendingConfirmation", s.State)
	}
	if s.Pending.Turf != "Greenfield Arena" {
		t.Errorf("pending snapshot not stored: %+v", s.Pending)
	}

	b, err := s.Confirm()
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if s.State != booking.Submitting {
		t.Fatalf("state = %v, want Submitting", s.State)
	}
	if b != s.Pending {
		t.Error("Confirm did not return the pending snapshot")
	}

	if err := s.Succeed(); err != nil {
		t.Fatalf("Succeed failed: %v", err)
	}
	if s.State != booking.Succeeded {
		t.Errorf("state = %v, want Succeeded", s.State)
	}
}

// TestSubmission_ConfirmationMandatory tests that Idle can never reach
// Submitting directly.
func TestSubmission_ConfirmationMandatory(t *testing.T) {
	s := booking.NewSubmission("sub-2")
	if _, err := s.Confirm(); !errors.Is(err, booking.ErrInvalidTransition) {
		t.Errorf("Confirm from Idle: error = %v, want ErrInvalidTransition", err)
	}
	if s.State != booking.Idle {
		t.Errorf("state mutated by rejected transition: %v", s.State)
	}
}

// TestSubmission_ProposeValidates tests that an invalid booking cannot enter
// PendingConfirmation.
func TestSubmission_ProposeValidates(t *testing.T) {
	s := booking.NewSubmission("sub-3")
	b := validBooking()
	b.Name = ""
	if err := s.Propose(b); !errors.Is(err, booking.ErrNameRequired) {
		t.Errorf("Propose error = %v, want ErrNameRequired", err)
	}
	if s.State != booking.Idle {
		t.Errorf("state = %v, want Idle after failed Propose", s.State)
	}
}

// TestSubmission_Cancel tests PendingConfirmation -> Idle with no residue.
func TestSubmission_Cancel(t *testing.T) {
	s := booking.NewSubmission("sub-4")
	if err := s.Propose(validBooking()); err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if s.State != booking.Idle {
		t.Errorf("state = %v, want Idle", s.State)
	}
	if s.Pending != (booking.Booking{}) {
		t.Errorf("pending snapshot survived cancel: %+v", s.Pending)
	}
}

// TestSubmission_Fail tests the failure path records the backend message.
func TestSubmission_Fail(t *testing.T) {
	s := booking.NewSubmission("sub-5")
	if err := s.Propose(validBooking()); err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	if _, err := s.Confirm(); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if err := s.Fail("slot already booked"); err != nil {
		t.Fatalf("Fail failed: %v", err)
	}
	if s.State != booking.Failed {
		t.Errorf("state = %v, want Failed", s.State)
	}
	if s.Message != "slot already booked" {
		t.Errorf("message = %q", s.Message)
	}

	// Terminal states reject further moves.
	if err := s.Succeed(); !errors.Is(err, booking.ErrInvalidTransition) {
		t.Errorf("Succeed after Failed: error = %v, want ErrInvalidTransition", err)
	}
}
