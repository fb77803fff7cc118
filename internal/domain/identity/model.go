package identity

import "strings"

// Session Store keys. The original clients wrote identity under several
// legacy aliases, and all of them are still honored on read.
const (
	KeyUserToken   = "userToken"
	KeyToken       = "token"
	KeyUserName    = "userFullName"
	KeyFullName    = "fullName"
	KeyName        = "name"
	KeyUserEmail   = "userEmail"
	KeyEmail       = "email"
	KeyUserPhone   = "userPhone"
	KeyPhoneNumber = "phoneNumber"
	KeyPhone       = "phone"
)

// Alias lists, in priority order: the first non-empty value wins on read.
var (
	FullNameAliases = []string{KeyUserName, KeyFullName, KeyName}
	EmailAliases    = []string{KeyUserEmail, KeyEmail}
	PhoneAliases    = []string{KeyUserPhone, KeyPhoneNumber, KeyPhone}
)

// AllKeys lists every Session Store key owned by the identity layer.
// Logout clears all of them.
var AllKeys = []string{
	KeyUserToken, KeyToken,
	KeyUserName, KeyFullName, KeyName,
	KeyUserEmail, KeyEmail,
	KeyUserPhone, KeyPhoneNumber, KeyPhone,
}

// Identity is the canonical authenticated-user record shared by every screen.
type Identity struct {
	FullName   string
	Email      string
	Phone      string
	Token      string // user auth token
	AdminToken string // admin auth token
}

// IsUser reports whether a user token is present.
func (id Identity) IsUser() bool { return id.Token != "" }

// IsAdmin reports whether an admin token is present.
func (id Identity) IsAdmin() bool { return id.AdminToken != "" }

// Getter reads a single value from a Session Store snapshot.
type Getter interface {
	Get(key string) string
}

// Resolve builds an Identity from a Session Store snapshot. For each field
// the ordered alias list is tried and the first non-empty value wins; a field
// with no populated alias resolves to the empty string.
// PRE: store is a point-in-time snapshot
// POST: pure — no store writes, idempotent for an unchanged snapshot
func Resolve(store Getter) Identity {
	return Identity{
		FullName:   firstNonEmpty(store, FullNameAliases),
		Email:      firstNonEmpty(store, EmailAliases),
		Phone:      firstNonEmpty(store, PhoneAliases),
		Token:      store.Get(KeyUserToken),
		AdminToken: store.Get(KeyToken),
	}
}

func firstNonEmpty(store Getter, keys []string) string {
	for _, k := range keys {
		if v := store.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// User is the canonical form of one element of the backend user list. The
// alias-merging of the wire payload happens in the backend adapter; the rest
// of the system only ever sees this shape.
type User struct {
	ID       string
	FullName string
	Email    string
	Phone    string
}

// MatchByEmail finds the user whose email equals sessionEmail, trying exact
// equality first and falling back to a case-insensitive comparison.
func MatchByEmail(users []User, sessionEmail string) (User, bool) {
	if sessionEmail == "" {
		return User{}, false
	}
	for _, u := range users {
		if u.Email == sessionEmail {
			return u, true
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, sessionEmail) {
			return u, true
		}
	}
	return User{}, false
}

// NeedsReconcile reports whether a server soft-fill lookup is worthwhile.
// The fetch is skipped entirely when both name and phone are already present.
func NeedsReconcile(local Identity) bool {
	return local.FullName == "" || local.Phone == ""
}

// Reconcile fills the empty fields of local from the server user list entry
// matching sessionEmail. A non-empty local field is never overwritten. The
// returned bool reports whether anything was filled; when no user matches,
// local is returned unchanged.
// POST: pure — persistence of filled fields is the caller's concern
func Reconcile(local Identity, users []User, sessionEmail string) (Identity, bool) {
	u, ok := MatchByEmail(users, sessionEmail)
	if !ok {
		return local, false
	}
	changed := false
	if local.FullName == "" && u.FullName != "" {
		local.FullName = u.FullName
		changed = true
	}
	if local.Phone == "" && u.Phone != "" {
		local.Phone = u.Phone
		changed = true
	}
	if local.Email == "" && u.Email != "" {
		local.Email = u.Email
		changed = true
	}
	return local, changed
}
