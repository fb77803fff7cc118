package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"turfease/internal/adapters/http/middleware"
	"turfease/internal/adapters/storage/session"
	"turfease/internal/domain/booking"
	"turfease/internal/domain/feedback"
	"turfease/internal/domain/identity"
	"turfease/internal/domain/turf"
)

// UserService is the user-service surface the handlers drive.
type UserService interface {
	Login(ctx context.Context, email, password string) (identity.Identity, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, fullName, phone, email, password string) error
	List(ctx context.Context, token string) ([]identity.User, error)
}

// TurfService is the turf-service surface the handlers drive.
type TurfService interface {
	List(ctx context.Context) ([]turf.Turf, error)
	Create(ctx context.Context, t turf.Turf) error
	Update(ctx context.Context, t turf.Turf) error
	Delete(ctx context.Context, id string) error
}

// BookingService is the booking surface the handlers drive.
type BookingService interface {
	Create(ctx context.Context, token string, b booking.Booking) error
	All(ctx context.Context) ([]booking.Record, error)
	SearchByEmail(ctx context.Context, email string) ([]booking.Record, error)
	Update(ctx context.Context, id, name, turfName, timeValue string) error
}

// ContactService is the contact-form surface the handlers drive.
type ContactService interface {
	List(ctx context.Context) ([]feedback.Feedback, error)
}

// Services holds all backend dependencies.
type Services struct {
	Users    UserService
	Turfs    TurfService
	Bookings BookingService
	Contacts ContactService
}

// loadCSRFKey reads the CSRF secret from TURFEASE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("TURFEASE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("TURFEASE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("TURFEASE_ENV") == "production" {
		log.Fatal("TURFEASE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set TURFEASE_CSRF_KEY for production.")
	return key
}

// Global services instance (set by NewMux)
var services *Services

// Global session store instance (set by NewMux)
var sessions session.Store

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Services, store session.Store) http.Handler {
	services = s
	sessions = store
	middleware.SecureCookies = os.Getenv("TURFEASE_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> EnsureSession -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.EnsureSession(store),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
