// Package backend holds the HTTP clients for the external TurfEase services.
// Every wire payload is normalized here — alias field merging and dual-cased
// encoding never leak past this package.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client is a thin JSON client for one upstream base URL.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8787".
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Error carries the backend-reported message for a non-2xx response. The
// message is what the user sees, verbatim; Status is for callers and logs.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// do issues one request with an optional bearer token and JSON body.
// PRE: path starts with "/"
// POST: the caller owns the response body
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.http.Do(req)
}

// doJSON issues a request and decodes a 2xx response into out (out may be
// nil). Non-2xx responses become *Error with the backend message.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	res, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return responseError(res)
	}
	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// responseError extracts the JSON `message` field from an error response,
// falling back to the raw body text.
func responseError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return &Error{Status: res.StatusCode, Message: payload.Message}
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return &Error{Status: res.StatusCode, Message: msg}
}

// Targets is an ordered list of candidate paths for one operation. Each
// target is tried in order until one succeeds; the attempt count never
// exceeds the list length.
type Targets []string

// flexString decodes a JSON value that may arrive as a string or a number.
// The user and booking services disagree about the types of ids and phone
// numbers, so both are accepted.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexFloat decodes a JSON number that may arrive quoted.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s: %w", data, err)
	}
	*f = flexFloat(v)
	return nil
}
