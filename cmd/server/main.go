package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"turfease/internal/adapters/backend"
	web "turfease/internal/adapters/http"
	"turfease/internal/adapters/storage"
	sessionStore "turfease/internal/adapters/storage/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Session values are the only local state; everything else lives in the
	// user and turf backends. Redis when configured, sqlite otherwise.
	var store sessionStore.Store
	if redisAddr := os.Getenv("TURFEASE_REDIS_ADDR"); redisAddr != "" {
		rs := sessionStore.NewRedisStore(redisAddr)
		if err := rs.Ping(context.Background()); err != nil {
			log.Fatalf("redis unreachable: %v", err)
		}
		store = rs
		log.Printf("Session store: redis (%s)", redisAddr)
	} else {
		dbPath := envOrDefault("TURFEASE_DB", "turfease.db")
		dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		// Connection pool settings for WAL mode
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)

		if err := db.Ping(); err != nil {
			log.Fatalf("database unreachable: %v", err)
		}
		if err := storage.InitDB(db); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		store = sessionStore.NewSQLiteStore(db)
		log.Printf("Session store: sqlite (%s)", dbPath)
	}

	// Backend service base URLs
	userAPI := envOrDefault("TURFEASE_USER_API", "http://localhost:5002")
	turfAPI := envOrDefault("TURFEASE_TURF_API", "http://localhost:8787")

	services := &web.Services{
		Users:    backend.NewUserClient(userAPI),
		Turfs:    backend.NewTurfClient(turfAPI),
		Bookings: backend.NewBookingClient(turfAPI),
		Contacts: backend.NewContactClient(turfAPI),
	}

	mux := web.NewMux("static", services, store)

	addr := envOrDefault("TURFEASE_ADDR", ":3000")
	log.Printf("TurfEase %s starting on %s (env=%s, users=%s, turfs=%s)",
		version, addr, envOrDefault("TURFEASE_ENV", "development"), userAPI, turfAPI)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
