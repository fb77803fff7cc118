package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"turfease/internal/domain/booking"
)

// DefaultCreateTargets is the ordered endpoint list for booking creation:
// the primary route first, then the legacy path still served by the older
// booking service.
var DefaultCreateTargets = Targets{"/api/slotBookings", "/slotbookings/create"}

// BookingClient talks to the slot-booking endpoints.
type BookingClient struct {
	c             *Client
	createTargets Targets
}

// NewBookingClient creates a BookingClient with the default create targets.
func NewBookingClient(base string) *BookingClient {
	return &BookingClient{c: New(base), createTargets: DefaultCreateTargets}
}

// NewBookingClientWithTargets overrides the create endpoint list.
// Intended for use in tests.
func NewBookingClientWithTargets(base string, targets Targets) *BookingClient {
	return &BookingClient{c: New(base), createTargets: targets}
}

// bookingPayload is the wire shape of one booking record.
type bookingPayload struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber flexString `json:"phoneNumber"`
	Time        string     `json:"time"`
	Turf        string     `json:"turf"`
}

func (p bookingPayload) normalize() booking.Record {
	return booking.Record{
		ID:    string(p.ID),
		Name:  p.Name,
		Email: p.Email,
		Phone: string(p.PhoneNumber),
		Time:  p.Time,
		Turf:  p.Turf,
	}
}

// All fetches every booking. A non-array payload is treated as "nothing
// booked" rather than an error, matching the availability contract.
func (bc *BookingClient) All(ctx context.Context) ([]booking.Record, error) {
	var raw json.RawMessage
	if err := bc.c.doJSON(ctx, http.MethodGet, "/slotbookings/all", "", nil, &raw); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, nil
	}
	var payloads []bookingPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return nil, nil
	}
	return normalizeAll(payloads), nil
}

// SearchByEmail fetches the bookings made under the given email.
func (bc *BookingClient) SearchByEmail(ctx context.Context, email string) ([]booking.Record, error) {
	path := "/slotbookings/search?email=" + url.QueryEscape(email)
	var payloads []bookingPayload
	if err := bc.c.doJSON(ctx, http.MethodGet, path, "", nil, &payloads); err != nil {
		return nil, err
	}
	return normalizeAll(payloads), nil
}

// Create submits a booking, trying each target in order and stopping at the
// first success. The phone number goes over the wire as a number.
func (bc *BookingClient) Create(ctx context.Context, token string, b booking.Booking) error {
	phone, err := b.PhoneNumber()
	if err != nil {
		return err
	}
	payload := map[string]any{
		"name":        b.Name,
		"email":       b.Email,
		"phoneNumber": phone,
		"time":        b.ComposedTime(),
		"turf":        b.Turf,
	}

	var lastErr error
	for _, path := range bc.createTargets {
		err := bc.c.doJSON(ctx, http.MethodPost, path, token, payload, nil)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// Update rewrites an existing booking's name, turf and time. The time is
// normalized to the ISO-like yyyy-MM-ddTHH:mm:ss shape the backend stores.
func (bc *BookingClient) Update(ctx context.Context, id, name, turfName, timeValue string) error {
	body := map[string]string{
		"name": name,
		"turf": turfName,
		"time": normalizeISOTime(timeValue),
	}
	return bc.c.doJSON(ctx, http.MethodPut, "/slotbookings/"+id, "", body, nil)
}

func normalizeAll(payloads []bookingPayload) []booking.Record {
	records := make([]booking.Record, 0, len(payloads))
	for _, p := range payloads {
		records = append(records, p.normalize())
	}
	return records
}

// normalizeISOTime coerces common datetime shapes into
// "2006-01-02T15:04:05". Values already carrying a 'T' pass through
// untouched.
func normalizeISOTime(value string) string {
	if strings.Contains(value, "T") {
		return value
	}
	layouts := []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02T15:04:05")
		}
	}
	return value
}
