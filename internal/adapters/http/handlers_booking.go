package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"turfease/internal/adapters/http/middleware"
	"turfease/internal/application/orchestrators"
	"turfease/internal/domain/availability"
	"turfease/internal/domain/booking"
	"turfease/internal/domain/toast"
	"turfease/internal/domain/turf"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// slotView is one selectable slot row on the booking page.
type slotView struct {
	Slot   availability.Slot
	Value  string // form value, "start-end"
	Booked bool
}

func bookingPageURL(turfName, date string) string {
	return "/booking?turf=" + url.QueryEscape(turfName) + "&date=" + url.QueryEscape(date)
}

func submitDeps(r *http.Request) orchestrators.SubmitBookingDeps {
	return orchestrators.SubmitBookingDeps{
		Bookings:   services.Bookings,
		Sessions:   sessions,
		Token:      middleware.TokenFromContext(r.Context()),
		GenerateID: generateID,
	}
}

// handleBookingPage renders the slot picker for one turf and date. Taken
// slots render disabled; the contact fields prefill from the session
// identity, soft-filled from the backend when incomplete.
func handleBookingPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	turfName := r.URL.Query().Get("turf")
	if turfName == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeNow().Format("2006-01-02")
	}

	slots := turf.DefaultSlots()
	if turfs, err := orchestrators.QueryTurfList(ctx, services.Turfs); err == nil {
		for _, t := range turfs {
			if t.Name == turfName {
				slots = t.WithSlots(t.Slots).Slots
				break
			}
		}
	}

	booked := orchestrators.QueryBookedSlots(ctx, orchestrators.BookedSlotsInput{Turf: turfName, Date: date}, services.Bookings)
	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, slotView{
			Slot:   s,
			Value:  s.StartTime + "-" + s.EndTime,
			Booked: booked.IsBooked(s, date),
		})
	}

	id := orchestrators.ExecuteReconcileIdentity(ctx, orchestrators.ReconcileDeps{
		Users:    services.Users,
		Sessions: sessions,
		Token:    middleware.TokenFromContext(ctx),
	})

	renderTemplate(w, r, "booking.html", map[string]any{
		"TurfName": turfName,
		"Date":     date,
		"Slots":    views,
		"Prefill":  id,
	})
}

// handleBookingPropose validates the submitted details and shows the
// confirmation page. Nothing reaches the backend yet.
func handleBookingPropose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	start, end := splitSlotValue(r.FormValue("slot"))
	b := booking.Booking{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Date:      r.FormValue("date"),
		StartTime: start,
		EndTime:   end,
		Turf:      r.FormValue("turf"),
	}

	sub, err := orchestrators.ExecuteProposeBooking(r.Context(), b, submitDeps(r))
	if err != nil {
		setFlash(r, err.Error(), toast.TypeDanger, toast.PositionTop)
		http.Redirect(w, r, bookingPageURL(b.Turf, b.Date), http.StatusSeeOther)
		return
	}

	renderTemplate(w, r, "booking_confirm.html", map[string]any{
		"Booking":   sub.Pending,
		"TimeLabel": sub.Pending.TimeLabel(),
	})
}

// handleBookingConfirm submits the pending booking. Success lands on the
// profile with a toast; a backend rejection goes back to the slot picker with
// the backend's message.
func handleBookingConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sub, err := orchestrators.ExecuteConfirmBooking(r.Context(), submitDeps(r))
	if errors.Is(err, orchestrators.ErrNoPendingBooking) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if sub.State == booking.Failed {
		setFlash(r, sub.Message, toast.TypeDanger, toast.PositionTop)
		http.Redirect(w, r, bookingPageURL(sub.Pending.Turf, sub.Pending.Date), http.StatusSeeOther)
		return
	}

	setFlash(r, "Booking successful!", toast.TypeSuccess, toast.PositionTop)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// handleBookingCancel abandons the pending booking and returns to the slot
// picker.
func handleBookingCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	deps := submitDeps(r)
	pending, err := orchestrators.PendingBooking(r.Context(), deps)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := orchestrators.ExecuteCancelBooking(r.Context(), deps); err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, bookingPageURL(pending.Turf, pending.Date), http.StatusSeeOther)
}

// splitSlotValue splits a "start-end" form value into its two wall-clock
// times.
func splitSlotValue(value string) (start, end string) {
	parts := strings.SplitN(value, "-", 2)
	start = parts[0]
	if len(parts) == 2 {
		end = parts[1]
	}
	return start, end
}
