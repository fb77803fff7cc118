package backend

import (
	"context"
	"net/http"

	"turfease/internal/domain/identity"
)

// UserClient talks to the user service: auth endpoints and the user list.
type UserClient struct {
	c *Client
}

// NewUserClient creates a UserClient for the user service base URL.
func NewUserClient(base string) *UserClient {
	return &UserClient{c: New(base)}
}

// userPayload is the wire shape of one user-list element. The service is
// inconsistent about field names, so every alias is declared and merged in
// normalize.
type userPayload struct {
	ID          flexString `json:"id"`
	UserID      flexString `json:"userId"`
	FullName    string     `json:"fullName"`
	Name        string     `json:"name"`
	UserEmail   string     `json:"userEmail"`
	Email       string     `json:"email"`
	PhoneNumber flexString `json:"phoneNumber"`
	Phone       flexString `json:"phone"`
}

func (p userPayload) normalize() identity.User {
	return identity.User{
		ID:       coalesce(string(p.ID), string(p.UserID)),
		FullName: coalesce(p.FullName, p.Name),
		Email:    coalesce(p.UserEmail, p.Email),
		Phone:    coalesce(string(p.PhoneNumber), string(p.Phone)),
	}
}

// loginResponse covers every alias the login endpoint has been seen to use.
type loginResponse struct {
	Token       string     `json:"token"`
	UserToken   string     `json:"userToken"`
	FullName    string     `json:"fullName"`
	Name        string     `json:"name"`
	UserEmail   string     `json:"userEmail"`
	Email       string     `json:"email"`
	PhoneNumber flexString `json:"phoneNumber"`
	Phone       flexString `json:"phone"`
}

// Login authenticates a user. The returned Identity carries whichever
// profile fields the response included; empty fields are the caller's to
// backfill (e.g. with the submitted email).
func (uc *UserClient) Login(ctx context.Context, email, password string) (identity.Identity, error) {
	body := map[string]string{"userEmail": email, "password": password}
	var res loginResponse
	if err := uc.c.doJSON(ctx, http.MethodPost, "/api/User/login", "", body, &res); err != nil {
		return identity.Identity{}, err
	}
	return identity.Identity{
		Token:    coalesce(res.Token, res.UserToken),
		FullName: coalesce(res.FullName, res.Name),
		Email:    coalesce(res.UserEmail, res.Email),
		Phone:    coalesce(string(res.PhoneNumber), string(res.Phone)),
	}, nil
}

// Register creates a new user account. Registration does not log the user
// in; no token is returned.
func (uc *UserClient) Register(ctx context.Context, fullName, phone, email, password string) error {
	body := map[string]string{
		"fullName":    fullName,
		"phoneNumber": phone,
		"userEmail":   email,
		"password":    password,
	}
	return uc.c.doJSON(ctx, http.MethodPost, "/api/User/register", "", body, nil)
}

// AdminLogin authenticates an admin and returns the admin token.
func (uc *UserClient) AdminLogin(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var res struct {
		Token string `json:"token"`
	}
	if err := uc.c.doJSON(ctx, http.MethodPost, "/api/admin/login", "", body, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// List fetches all users. The caller linear-scans for a matching email; the
// service offers no lookup endpoint.
func (uc *UserClient) List(ctx context.Context, token string) ([]identity.User, error) {
	var payloads []userPayload
	if err := uc.c.doJSON(ctx, http.MethodGet, "/api/User", token, nil, &payloads); err != nil {
		return nil, err
	}
	users := make([]identity.User, 0, len(payloads))
	for _, p := range payloads {
		users = append(users, p.normalize())
	}
	return users, nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
