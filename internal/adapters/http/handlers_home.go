package web

import (
	"net/http"

	"turfease/internal/application/orchestrators"
)

// handleHome lists the turfs with their Book Now links.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	turfs, err := orchestrators.QueryTurfList(r.Context(), services.Turfs)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "home.html", map[string]any{
		"Turfs": turfs,
	})
}
