package web

import (
	"net/http"

	"turfease/internal/adapters/http/middleware"
	"turfease/internal/application/orchestrators"
	"turfease/internal/domain/toast"
)

// handleLogin serves the user login form and processes submissions. A
// successful login lands on the profile page with a success toast.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "login.html", map[string]any{"Email": ""})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	deps := orchestrators.LoginDeps{
		Users:    services.Users,
		Sessions: sessions,
		Token:    middleware.TokenFromContext(r.Context()),
	}
	if _, err := orchestrators.ExecuteUserLogin(r.Context(), input, deps); err != nil {
		renderTemplate(w, r, "login.html", map[string]any{
			"Email": input.Email,
			"Toast": toast.Toast{Show: true, Type: toast.TypeDanger, Message: err.Error(), Position: toast.PositionTop},
		})
		return
	}

	setFlash(r, "Login successful!", toast.TypeSuccess, toast.PositionTop)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// handleRegister serves the registration form. Registration never logs the
// user in — success routes to the login form.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "register.html", map[string]any{"FullName": "", "Phone": "", "Email": ""})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.RegisterInput{
		FullName: r.FormValue("fullName"),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	deps := orchestrators.RegisterDeps{
		Users:    services.Users,
		Sessions: sessions,
		Token:    middleware.TokenFromContext(r.Context()),
	}
	if err := orchestrators.ExecuteUserRegister(r.Context(), input, deps); err != nil {
		renderTemplate(w, r, "register.html", map[string]any{
			"FullName": input.FullName,
			"Phone":    input.Phone,
			"Email":    input.Email,
			"Toast":    toast.Toast{Show: true, Type: toast.TypeDanger, Message: err.Error(), Position: toast.PositionTop},
		})
		return
	}

	setFlash(r, "Registration successful! Please login.", toast.TypeSuccess, toast.PositionTop)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleAdminLogin serves the admin login form. A successful login lands on
// the dashboard.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "admin_login.html", map[string]any{"Username": ""})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.AdminLoginInput{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	deps := orchestrators.LoginDeps{
		Users:    services.Users,
		Sessions: sessions,
		Token:    middleware.TokenFromContext(r.Context()),
	}
	if err := orchestrators.ExecuteAdminLogin(r.Context(), input, deps); err != nil {
		renderTemplate(w, r, "admin_login.html", map[string]any{
			"Username": input.Username,
			"Toast":    toast.Toast{Show: true, Type: toast.TypeDanger, Message: err.Error(), Position: toast.PositionTop},
		})
		return
	}

	setFlash(r, "Admin Login successful!", toast.TypeSuccess, toast.PositionTop)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout destroys the whole session identity and returns home.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	deps := orchestrators.LogoutDeps{
		Sessions: sessions,
		Token:    middleware.TokenFromContext(r.Context()),
	}
	if err := orchestrators.ExecuteLogout(r.Context(), deps); err != nil {
		internalError(w, err)
		return
	}
	setFlash(r, "Logout successful!", toast.TypeSuccess, toast.PositionTop)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAdminLogout drops only the admin token; a logged-in user identity in
// the same session survives.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	deps := orchestrators.LogoutDeps{
		Sessions: sessions,
		Token:    middleware.TokenFromContext(r.Context()),
	}
	if err := orchestrators.ExecuteAdminLogout(r.Context(), deps); err != nil {
		internalError(w, err)
		return
	}
	setFlash(r, "Admin Logged out successfully!", toast.TypeSuccess, toast.PositionTop)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
