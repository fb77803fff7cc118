package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"turfease/internal/adapters/http/middleware"
	"turfease/internal/domain/toast"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// templatesDir is relative to the process working directory. Tests point it
// at the package-local templates.
var templatesDir = "internal/adapters/http/templates"

// renderTemplate renders the named page inside the layout. The resolved
// identity drives the nav state and any parked flash becomes the page's
// toast, unless the handler already supplied one under "Toast".
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	id := middleware.IdentityFromContext(r.Context())

	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Toast"]; !ok {
		data["Toast"] = takeFlash(r)
	}
	data["Identity"] = id

	funcMap := template.FuncMap{
		"currentName":  func() string { return id.FullName },
		"currentEmail": func() string { return id.Email },
		"isLoggedIn":   func() bool { return id.IsUser() },
		"isAdmin":      func() bool { return id.IsAdmin() },
		"csrfToken":    func() string { return csrf.Token(r) },
		"dismissMillis": func() int64 {
			return toast.DismissAfter.Milliseconds()
		},
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}
