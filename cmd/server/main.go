package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	api "github.com/roadready/roadready-backend/internal/api/http"
	"github.com/roadready/roadready-backend/internal/auth"
	"github.com/roadready/roadready-backend/internal/booking"
	"github.com/roadready/roadready-backend/internal/config"
	"github.com/roadready/roadready-backend/internal/db"
	"github.com/roadready/roadready-backend/internal/prep"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	users := auth.NewSQLUserStore(dbh)
	tests := prep.NewSQLStore(dbh)
	appointments := booking.NewSQLStore(dbh)
	authSvc := auth.NewAuthService(cfg.JWTSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Use(httprate.LimitByIP(cfg.RateLimit, time.Duration(cfg.RateWindowMin)*time.Minute))

		// Public surface
		ar.Post("/auth/register", api.RegisterHandler(authSvc, users))
		ar.Post("/auth/login", api.LoginHandler(authSvc, users))

		ar.Get("/states", api.ListStatesHandler())
		ar.Get("/states/{code}", api.GetStateHandler())
		ar.Get("/states/{code}/locations", api.StateLocationsHandler())

		ar.Get("/tests/state/{state}", api.ListTestsByStateHandler(tests))
		ar.Get("/tests/{testID}", api.GetTestHandler(tests))

		ar.Get("/appointments/slots/{state}/{date}", api.SlotsHandler(appointments))

		// Authenticated surface
		ar.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(authSvc))

			pr.Get("/auth/me", api.MeHandler(users))

			pr.Post("/tests/{testID}/submit", api.SubmitTestHandler(tests))
			pr.Get("/tests/user/history", api.TestHistoryHandler(tests))

			pr.Post("/appointments/book", api.BookHandler(appointments))
			pr.Get("/appointments/my-appointments", api.MyAppointmentsHandler(appointments))
			pr.Patch("/appointments/{appointmentID}/cancel", api.CancelAppointmentHandler(appointments))
		})
	})

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
