package web

import (
	"net/http"

	"turfease/internal/adapters/http/middleware"
	"turfease/internal/application/orchestrators"
)

// handleProfile renders the logged-in user's details and booking history.
func handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profile := orchestrators.QueryProfile(r.Context(), orchestrators.ProfileDeps{
		Users:    services.Users,
		Bookings: services.Bookings,
		Sessions: sessions,
		Token:    middleware.TokenFromContext(r.Context()),
	})

	renderTemplate(w, r, "profile.html", map[string]any{
		"Profile":  profile.Identity,
		"Bookings": profile.Bookings,
	})
}
