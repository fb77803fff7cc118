package backend

import (
	"context"
	"net/http"

	"turfease/internal/domain/feedback"
)

// ContactClient reads the feedback collection.
type ContactClient struct {
	c *Client
}

// NewContactClient creates a ContactClient for the turf service base URL.
func NewContactClient(base string) *ContactClient {
	return &ContactClient{c: New(base)}
}

type contactPayload struct {
	ID       flexString `json:"id"`
	FullName string     `json:"fullname"`
	Email    string     `json:"email"`
	Message  string     `json:"message"`
}

// List fetches all feedback entries.
func (cc *ContactClient) List(ctx context.Context) ([]feedback.Feedback, error) {
	var payloads []contactPayload
	if err := cc.c.doJSON(ctx, http.MethodGet, "/contacts", "", nil, &payloads); err != nil {
		return nil, err
	}
	items := make([]feedback.Feedback, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, feedback.Feedback{
			ID:       string(p.ID),
			FullName: p.FullName,
			Email:    p.Email,
			Message:  p.Message,
		})
	}
	return items, nil
}
