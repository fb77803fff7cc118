package identity_test

import (
	"testing"

	"turfease/internal/domain/identity"
)

// snapshot is a map-backed Session Store snapshot.
type snapshot map[string]string

func (s snapshot) Get(key string) string { return s[key] }

// TestResolve_AliasPriority tests that the first non-empty alias wins.
func TestResolve_AliasPriority(t *testing.T) {
	tests := []struct {
		name  string
		store snapshot
		want  identity.Identity
	}{
		{
			name: "primary keys win",
			store: snapshot{
				"userFullName": "Jane Doe",
				"fullName":     "Shadowed",
				"userEmail":    "jane@example.com",
				"userPhone":    "9876543210",
				"userToken":    "tok-1",
			},
			want: identity.Identity{FullName: "Jane Doe", Email: "jane@example.com", Phone: "9876543210", Token: "tok-1"},
		},
		{
			name: "legacy aliases fill gaps",
			store: snapshot{
				"name":        "Old Name",
				"email":       "old@example.com",
				"phoneNumber": "1112223333",
			},
			want: identity.Identity{FullName: "Old Name", Email: "old@example.com", Phone: "1112223333"},
		},
		{
			name:  "empty store resolves to empty fields",
			store: snapshot{},
			want:  identity.Identity{},
		},
		{
			name: "admin token is separate from user token",
			store: snapshot{
				"token": "admin-tok",
			},
			want: identity.Identity{AdminToken: "admin-tok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identity.Resolve(tt.store)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestResolve_Idempotent tests that resolving twice on an unchanged snapshot
// yields the same result.
func TestResolve_Idempotent(t *testing.T) {
	store := snapshot{"fullName": "Jane", "email": "j@e.com", "phone": "123"}
	first := identity.Resolve(store)
	second := identity.Resolve(store)
	if first != second {
		t.Errorf("Resolve not idempotent: %+v vs %+v", first, second)
	}
}

// TestMatchByEmail tests exact-then-case-insensitive matching.
func TestMatchByEmail(t *testing.T) {
	users := []identity.User{
		{ID: "1", Email: "Jane@Example.com", FullName: "Jane"},
		{ID: "2", Email: "jane@example.com", FullName: "Other Jane"},
		{ID: "3", Email: "bob@example.com", FullName: "Bob"},
	}

	// Exact match beats case-insensitive match even when it appears later.
	u, ok := identity.MatchByEmail(users, "jane@example.com")
	if !ok || u.ID != "2" {
		t.Errorf("expected exact match with ID=2, got %+v ok=%v", u, ok)
	}

	u, ok = identity.MatchByEmail(users, "BOB@EXAMPLE.COM")
	if !ok || u.ID != "3" {
		t.Errorf("expected case-insensitive match with ID=3, got %+v ok=%v", u, ok)
	}

	if _, ok := identity.MatchByEmail(users, "nobody@example.com"); ok {
		t.Error("expected no match for unknown email")
	}

	if _, ok := identity.MatchByEmail(users, ""); ok {
		t.Error("expected no match for empty email")
	}
}

// TestReconcile_NeverOverwrites tests that non-empty local fields survive.
func TestReconcile_NeverOverwrites(t *testing.T) {
	users := []identity.User{
		{ID: "1", Email: "jane@example.com", FullName: "Server Jane", Phone: "5550001111"},
	}
	local := identity.Identity{FullName: "Local Jane", Email: "jane@example.com"}

	got, changed := identity.Reconcile(local, users, "jane@example.com")
	if !changed {
		t.Fatal("expected a fill to be reported")
	}
	if got.FullName != "Local Jane" {
		t.Errorf("local name overwritten: got %q", got.FullName)
	}
	if got.Phone != "5550001111" {
		t.Errorf("expected phone filled from server, got %q", got.Phone)
	}
}

// TestReconcile_NoMatchKeepsLocal tests the silent no-op path.
func TestReconcile_NoMatchKeepsLocal(t *testing.T) {
	local := identity.Identity{FullName: "Jane", Email: "jane@example.com"}
	got, changed := identity.Reconcile(local, nil, "jane@example.com")
	if changed {
		t.Error("expected no change when no user matches")
	}
	if got != local {
		t.Errorf("local identity mutated: %+v", got)
	}
}

// TestNeedsReconcile tests the skip guard.
func TestNeedsReconcile(t *testing.T) {
	tests := []struct {
		name  string
		local identity.Identity
		want  bool
	}{
		{"both present skips", identity.Identity{FullName: "J", Phone: "1"}, false},
		{"missing phone fetches", identity.Identity{FullName: "J"}, true},
		{"missing name fetches", identity.Identity{Phone: "1"}, true},
		{"both missing fetches", identity.Identity{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := identity.NeedsReconcile(tt.local); got != tt.want {
				t.Errorf("NeedsReconcile() = %v, want %v", got, tt.want)
			}
		})
	}
}
