package booking

import (
	"errors"
	"fmt"
)

// State of one booking submission.
type State int

const (
	Idle State = iota
	PendingConfirmation
	Submitting
	Succeeded
	Failed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingConfirmation:
		return "pending_confirmation"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned for any move the submission flow does not
// allow. In particular there is no Idle -> Submitting transition: explicit
// confirmation is mandatory.
var ErrInvalidTransition = errors.New("invalid booking submission transition")

// Submission tracks one pass through the booking flow. The pending snapshot
// is what the confirmation step displays and what Confirm hands over for the
// actual POST.
type Submission struct {
	ID      string
	State   State
	Pending Booking
	Message string // backend error message when Failed
}

// NewSubmission starts an Idle submission.
func NewSubmission(id string) *Submission {
	return &Submission{ID: id, State: Idle}
}

// Propose moves Idle -> PendingConfirmation. The booking must pass required
// field validation; its snapshot is stored for the confirmation step.
func (s *Submission) Propose(b Booking) error {
	if s.State != Idle {
		return transitionErr(s.State, PendingConfirmation)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	s.Pending = b
	s.State = PendingConfirmation
	return nil
}

// Confirm moves PendingConfirmation -> Submitting on explicit user
// confirmation and returns the snapshot to submit. It never fires
// automatically.
func (s *Submission) Confirm() (Booking, error) {
	if s.State != PendingConfirmation {
		return Booking{}, transitionErr(s.State, Submitting)
	}
	s.State = Submitting
	return s.Pending, nil
}

// Cancel moves PendingConfirmation -> Idle with no side effects.
func (s *Submission) Cancel() error {
	if s.State != PendingConfirmation {
		return transitionErr(s.State, Idle)
	}
	s.Pending = Booking{}
	s.State = Idle
	return nil
}

// Succeed moves Submitting -> Succeeded.
func (s *Submission) Succeed() error {
	if s.State != Submitting {
		return transitionErr(s.State, Succeeded)
	}
	s.State = Succeeded
	return nil
}

// Fail moves Submitting -> Failed, recording the backend message.
func (s *Submission) Fail(message string) error {
	if s.State != Submitting {
		return transitionErr(s.State, Failed)
	}
	s.Message = message
	s.State = Failed
	return nil
}

func transitionErr(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
