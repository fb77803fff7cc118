package orchestrators

import (
	"context"
	"errors"
	"testing"

	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/booking"
	"turfease/internal/domain/identity"
)

func TestQueryProfile(t *testing.T) {
	ctx := context.Background()
	history := []booking.Record{
		{ID: "b-1", Email: "jane@example.com", Turf: "Green Arena", Time: "2025-09-11T10:00:00"},
	}

	t.Run("reconciled identity with booking history", func(t *testing.T) {
		store := session.NewMemoryStore()
		_ = store.Set(ctx, "v", identity.KeyUserToken, "abc")
		_ = store.Set(ctx, "v", identity.KeyUserEmail, "jane@example.com")

		users := &mockUserService{
			listFn: func(_ context.Context, _ string) ([]identity.User, error) {
				return []identity.User{{FullName: "Jane Doe", Email: "jane@example.com", Phone: "9876543210"}}, nil
			},
		}
		var searchedEmail string
		bookings := &mockBookingService{
			searchFn: func(_ context.Context, email string) ([]booking.Record, error) {
				searchedEmail = email
				return history, nil
			},
		}

		p := QueryProfile(ctx, ProfileDeps{Users: users, Bookings: bookings, Sessions: store, Token: "v"})
		if p.Identity.FullName != "Jane Doe" {
			t.Errorf("FullName = %q, want soft-filled from server", p.Identity.FullName)
		}
		if searchedEmail != "jane@example.com" {
			t.Errorf("searched email = %q, want resolved session email", searchedEmail)
		}
		if len(p.Bookings) != 1 || p.Bookings[0].ID != "b-1" {
			t.Errorf("Bookings = %+v", p.Bookings)
		}
	})

	t.Run("booking search failure renders empty history", func(t *testing.T) {
		store := session.NewMemoryStore()
		_ = store.Set(ctx, "v", identity.KeyUserToken, "abc")
		_ = store.Set(ctx, "v", identity.KeyUserEmail, "jane@example.com")
		_ = store.Set(ctx, "v", identity.KeyUserName, "Jane")
		_ = store.Set(ctx, "v", identity.KeyUserPhone, "9876543210")

		bookings := &mockBookingService{
			searchFn: func(_ context.Context, _ string) ([]booking.Record, error) {
				return nil, errors.New("service down")
			},
		}
		p := QueryProfile(ctx, ProfileDeps{Users: &mockUserService{}, Bookings: bookings, Sessions: store, Token: "v"})
		if p.Identity.FullName != "Jane" {
			t.Errorf("FullName = %q, want session value", p.Identity.FullName)
		}
		if len(p.Bookings) != 0 {
			t.Errorf("Bookings = %+v, want empty", p.Bookings)
		}
	})

	t.Run("no email skips the history fetch", func(t *testing.T) {
		store := session.NewMemoryStore()
		bookings := &mockBookingService{
			searchFn: func(_ context.Context, _ string) ([]booking.Record, error) {
				t.Fatal("SearchByEmail should not be called without an email")
				return nil, nil
			},
		}
		p := QueryProfile(ctx, ProfileDeps{Users: &mockUserService{}, Bookings: bookings, Sessions: store, Token: "v"})
		if p.Identity != (identity.Identity{}) || p.Bookings != nil {
			t.Errorf("profile = %+v, want zero", p)
		}
	})
}
