package backend

import (
	"context"
	"net/http"

	"turfease/internal/domain/turf"
)

// TurfClient talks to the turf collection endpoints.
type TurfClient struct {
	c *Client
}

// NewTurfClient creates a TurfClient for the turf service base URL.
func NewTurfClient(base string) *TurfClient {
	return &TurfClient{c: New(base)}
}

// turfPayload is the wire shape for reads: the backend answers with either
// lower-case or capitalized field names depending on which service wrote the
// record, so both are declared.
type turfPayload struct {
	ID       flexString `json:"id"`
	CapID    flexString `json:"Id"`
	Name     string     `json:"name"`
	CapName  string     `json:"Name"`
	Address  string     `json:"address"`
	CapAddr  string     `json:"Address"`
	Location string     `json:"location"`
	CapLoc   string     `json:"Location"`
	Price    flexFloat  `json:"price"`
	CapPrice flexFloat  `json:"Price"`
	Image    string     `json:"image"`
	CapImage string     `json:"Image"`
}

func (p turfPayload) normalize() turf.Turf {
	price := float64(p.Price)
	if price == 0 {
		price = float64(p.CapPrice)
	}
	return turf.Turf{
		ID:       coalesce(string(p.ID), string(p.CapID)),
		Name:     coalesce(p.Name, p.CapName),
		Address:  coalesce(p.Address, p.CapAddr),
		Location: coalesce(p.Location, p.CapLoc),
		Price:    price,
		Image:    coalesce(p.Image, p.CapImage),
	}
}

// encodeTurf builds the write payload. Both casings are sent simultaneously
// so either backend casing convention accepts the record — this dual
// encoding is a required compatibility behavior, not an accident.
func encodeTurf(t turf.Turf) map[string]any {
	payload := map[string]any{
		"name":     t.Name,
		"Name":     t.Name,
		"address":  t.Address,
		"Address":  t.Address,
		"location": t.Location,
		"price":    t.Price,
		"Price":    t.Price,
		"image":    t.Image,
	}
	if t.ID != "" {
		payload["id"] = t.ID
		payload["Id"] = t.ID
	}
	return payload
}

// List fetches all turfs.
func (tc *TurfClient) List(ctx context.Context) ([]turf.Turf, error) {
	var payloads []turfPayload
	if err := tc.c.doJSON(ctx, http.MethodGet, "/turfs", "", nil, &payloads); err != nil {
		return nil, err
	}
	turfs := make([]turf.Turf, 0, len(payloads))
	for _, p := range payloads {
		turfs = append(turfs, p.normalize())
	}
	return turfs, nil
}

// Create adds a new turf.
func (tc *TurfClient) Create(ctx context.Context, t turf.Turf) error {
	return tc.c.doJSON(ctx, http.MethodPost, "/turfs", "", encodeTurf(t), nil)
}

// Update replaces the turf with the given id.
func (tc *TurfClient) Update(ctx context.Context, t turf.Turf) error {
	return tc.c.doJSON(ctx, http.MethodPut, "/turfs/"+t.ID, "", encodeTurf(t), nil)
}

// Delete removes the turf with the given id.
func (tc *TurfClient) Delete(ctx context.Context, id string) error {
	return tc.c.doJSON(ctx, http.MethodDelete, "/turfs/"+id, "", nil, nil)
}
