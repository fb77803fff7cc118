package web

import (
	"net/http"
	"strconv"
	"strings"

	"turfease/internal/application/orchestrators"
	"turfease/internal/domain/dashboard"
	"turfease/internal/domain/toast"
	"turfease/internal/domain/turf"
)

// handleDashboard renders the admin dashboard with the panel selected by the
// query string. An unknown panel name falls back to the home cards.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	panel, err := dashboard.ParsePanel(r.URL.Query().Get("panel"))
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	view := dashboard.View{}
	if err := view.Select(panel); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Panel":  string(view.Active()),
		"IsHome": view.IsHome(),
	}

	switch panel {
	case dashboard.PanelAddForm:
		// An id in the query puts the form into edit mode, prefilled from
		// the current listing.
		if id := r.URL.Query().Get("id"); id != "" {
			turfs, err := orchestrators.QueryTurfList(ctx, services.Turfs)
			if err != nil {
				internalError(w, err)
				return
			}
			for _, t := range turfs {
				if t.ID == id {
					data["Editing"] = t
					break
				}
			}
		}
	case dashboard.PanelAllTurfs:
		turfs, err := orchestrators.QueryTurfList(ctx, services.Turfs)
		if err != nil {
			internalError(w, err)
			return
		}
		data["Turfs"] = turfs
	case dashboard.PanelFeedback:
		feedbacks, err := orchestrators.QueryFeedbackList(ctx, services.Contacts)
		if err != nil {
			internalError(w, err)
			return
		}
		data["Feedbacks"] = feedbacks
	case dashboard.PanelBookings:
		bookings, err := orchestrators.QueryBookingList(ctx, services.Bookings)
		if err != nil {
			internalError(w, err)
			return
		}
		data["Bookings"] = bookings
	}

	renderTemplate(w, r, "dashboard.html", data)
}

// handleDashboardTurfSave creates or updates a turf. A non-empty id means
// update. Either way the user returns to the turf listing, which re-fetches
// from the backend.
func handleDashboardTurfSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil && strings.TrimSpace(r.FormValue("price")) != "" {
		setFlash(r, "Price must be a number", toast.TypeDanger, toast.PositionTop)
		http.Redirect(w, r, "/dashboard?panel=add-turf", http.StatusSeeOther)
		return
	}

	t := turf.Turf{
		ID:       r.FormValue("id"),
		Name:     r.FormValue("name"),
		Address:  r.FormValue("address"),
		Location: r.FormValue("location"),
		Price:    price,
		Image:    r.FormValue("image"),
	}

	editing := t.ID != ""
	if editing {
		err = orchestrators.ExecuteUpdateTurf(r.Context(), t, services.Turfs)
	} else {
		err = orchestrators.ExecuteCreateTurf(r.Context(), t, services.Turfs)
	}
	if err != nil {
		setFlash(r, err.Error(), toast.TypeDanger, toast.PositionTop)
		target := "/dashboard?panel=add-turf"
		if editing {
			target += "&id=" + t.ID
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if editing {
		setFlash(r, "Turf updated successfully!", toast.TypeSuccess, toast.PositionTop)
	} else {
		setFlash(r, "Turf added successfully!", toast.TypeSuccess, toast.PositionTop)
	}
	http.Redirect(w, r, "/dashboard?panel=turfs", http.StatusSeeOther)
}

// handleDashboardTurfDelete removes a turf. The deletion was already
// confirmed on the listing page.
func handleDashboardTurfDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	id := r.FormValue("id")
	if id == "" {
		http.Error(w, "Missing turf id", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteDeleteTurf(r.Context(), id, services.Turfs); err != nil {
		setFlash(r, err.Error(), toast.TypeDanger, toast.PositionTop)
	} else {
		setFlash(r, "Turf deleted successfully!", toast.TypeSuccess, toast.PositionTop)
	}
	http.Redirect(w, r, "/dashboard?panel=turfs", http.StatusSeeOther)
}

// handleDashboardBookingUpdate rewrites one booking row from the bookings
// panel.
func handleDashboardBookingUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateBookingInput{
		ID:   r.FormValue("id"),
		Name: r.FormValue("name"),
		Turf: r.FormValue("turf"),
		Time: r.FormValue("time"),
	}
	if input.ID == "" {
		http.Error(w, "Missing booking id", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteUpdateBooking(r.Context(), input, services.Bookings); err != nil {
		setFlash(r, err.Error(), toast.TypeDanger, toast.PositionTop)
	} else {
		setFlash(r, "Booking updated successfully!", toast.TypeSuccess, toast.PositionTop)
	}
	http.Redirect(w, r, "/dashboard?panel=bookings", http.StatusSeeOther)
}
