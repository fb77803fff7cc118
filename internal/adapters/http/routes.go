package web

import (
	"net/http"

	"turfease/internal/adapters/http/middleware"
)

// registerRoutes wires every page and action onto the mux. Admin routes sit
// behind RequireAdmin, user-only routes behind RequireUser.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)

	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/admin/logout", handleAdminLogout)

	mux.Handle("/dashboard", middleware.RequireAdmin(http.HandlerFunc(handleDashboard)))
	mux.Handle("/dashboard/turfs", middleware.RequireAdmin(http.HandlerFunc(handleDashboardTurfSave)))
	mux.Handle("/dashboard/turfs/delete", middleware.RequireAdmin(http.HandlerFunc(handleDashboardTurfDelete)))
	mux.Handle("/dashboard/bookings/update", middleware.RequireAdmin(http.HandlerFunc(handleDashboardBookingUpdate)))

	mux.Handle("/booking", middleware.RequireUser(http.HandlerFunc(handleBookingPage)))
	mux.Handle("/booking/propose", middleware.RequireUser(http.HandlerFunc(handleBookingPropose)))
	mux.Handle("/booking/confirm", middleware.RequireUser(http.HandlerFunc(handleBookingConfirm)))
	mux.Handle("/booking/cancel", middleware.RequireUser(http.HandlerFunc(handleBookingCancel)))

	mux.Handle("/profile", middleware.RequireUser(http.HandlerFunc(handleProfile)))
}
