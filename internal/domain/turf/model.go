package turf

import (
	"errors"
	"fmt"
	"strings"

	"turfease/internal/domain/availability"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("turf name cannot be empty")
	ErrEmptyAddress  = errors.New("turf address cannot be empty")
	ErrEmptyLocation = errors.New("turf location cannot be empty")
	ErrNegativePrice = errors.New("turf price cannot be negative")
)

// Turf is a bookable ground. Slots are attached on the client side; the
// listing backend only carries the flat fields.
type Turf struct {
	ID       string
	Name     string
	Address  string
	Location string
	Price    float64
	Image    string
	Slots    []availability.Slot
}

// Validate checks the Turf before it is sent to the backend.
func (t *Turf) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(t.Address) == "" {
		return ErrEmptyAddress
	}
	if strings.TrimSpace(t.Location) == "" {
		return ErrEmptyLocation
	}
	if t.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// DefaultSlots returns the standard hourly booking windows (06:00 to 22:00)
// used when a turf carries no slot list of its own.
func DefaultSlots() []availability.Slot {
	slots := make([]availability.Slot, 0, 16)
	for h := 6; h < 22; h++ {
		slots = append(slots, availability.Slot{
			ID:        fmt.Sprintf("slot-%02d", h),
			StartTime: fmt.Sprintf("%02d:00", h),
			EndTime:   fmt.Sprintf("%02d:00", h+1),
		})
	}
	return slots
}

// WithSlots returns a copy of the turf with the given slots attached,
// falling back to the default windows when slots is nil.
func (t Turf) WithSlots(slots []availability.Slot) Turf {
	if slots == nil {
		slots = DefaultSlots()
	}
	t.Slots = slots
	return t
}
