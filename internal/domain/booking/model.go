package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"turfease/internal/domain/availability"
)

// Domain errors
var (
	ErrNameRequired  = errors.New("full name is required")
	ErrEmailRequired = errors.New("a valid email is required")
	ErrPhoneRequired = errors.New("a numeric phone number of up to 10 digits is required")
	ErrSlotRequired  = errors.New("a turf, date and slot must be selected")
	ErrInvalidPhone  = errors.New("phone number must be numeric")
)

var validate = validator.New()

// Booking is the canonical booking a user is asking for. The phone number is
// kept as a string while the form is being edited and coerced to a number at
// submission time.
type Booking struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required,numeric,max=10"`
	Date      string `validate:"required"`
	StartTime string `validate:"required"`
	EndTime   string
	Turf      string `validate:"required"`
}

// Validate checks the required fields using the shared validator rules and
// maps failures to domain errors.
func (b Booking) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Name":
			return ErrNameRequired
		case "Email":
			return ErrEmailRequired
		case "Phone":
			return ErrPhoneRequired
		case "Date", "StartTime", "Turf":
			return ErrSlotRequired
		}
	}
	return err
}

// ComposedTime is the booking's join key with its slot (see availability).
func (b Booking) ComposedTime() string {
	return availability.ComposedTime(b.Date, b.StartTime)
}

// TimeLabel is the human-readable slot window, e.g. "10:00 - 11:00".
func (b Booking) TimeLabel() string {
	if b.EndTime == "" {
		return b.StartTime
	}
	return b.StartTime + " - " + b.EndTime
}

// PhoneNumber coerces the phone field to the numeric type the backend entity
// expects.
func (b Booking) PhoneNumber() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(b.Phone), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPhone, b.Phone)
	}
	return n, nil
}

// Record is a booking as reported by the backend, already normalized from
// its wire aliases.
type Record struct {
	ID    string
	Name  string
	Email string
	Phone string
	Time  string // ISO-like datetime string, e.g. "2025-09-11T10:00:00"
	Turf  string
}

// Date returns the date part of the record's composed time, empty when the
// time carries no date.
func (r Record) Date() string {
	if i := strings.IndexByte(r.Time, 'T'); i > 0 {
		return r.Time[:i]
	}
	return ""
}

// AvailabilityEntry projects the record into the shape the booked-set
// computation consumes.
func (r Record) AvailabilityEntry() availability.Entry {
	return availability.Entry{Turf: r.Turf, Date: r.Date(), Time: r.Time}
}
