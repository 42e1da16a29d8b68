package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"PATHFINDER_BACK-END/internal/config"
	"PATHFINDER_BACK-END/internal/handlers"
	"PATHFINDER_BACK-END/internal/middleware"
)

// Handlers groups every handler the router needs
type Handlers struct {
	Auth        *handlers.AuthHandler
	GoogleAuth  *handlers.GoogleAuthHandler
	Health      *handlers.HealthHandler
	Generate    *handlers.GenerateHandler
	Sessions    *handlers.SessionsHandler
	Itineraries *handlers.ItinerariesHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc { return middleware.AuthMiddleware(next, jwtCfg) }
	optional := func(next http.HandlerFunc) http.HandlerFunc { return middleware.OptionalAuth(next, jwtCfg) }

	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/auth/register", h.Auth.Register)
	mux.HandleFunc("/api/auth/login", h.Auth.Login)
	mux.HandleFunc("/api/auth/profile", auth(h.Auth.GetProfile))
	mux.HandleFunc("/api/auth/google/login", h.GoogleAuth.GoogleLogin)
	mux.HandleFunc("/api/auth/google/callback", h.GoogleAuth.GoogleCallback)

	// Stateless generation
	mux.HandleFunc("/api/generate", optional(h.Generate.GenerateItinerary))
	mux.HandleFunc("/api/activity/regenerate", optional(h.Generate.RegenerateActivity))

	// Planning sessions
	mux.HandleFunc("/api/sessions", optional(h.Sessions.CreateSession))
	mux.HandleFunc("/api/sessions/{id}", h.Sessions.Session)
	mux.HandleFunc("/api/sessions/{id}/activities/remove", h.Sessions.RemoveActivity)
	mux.HandleFunc("/api/sessions/{id}/activities/edit", h.Sessions.EditActivity)
	mux.HandleFunc("/api/sessions/{id}/activities/alternatives", h.Sessions.Alternatives)
	mux.HandleFunc("/api/sessions/{id}/activities/select", h.Sessions.SelectAlternative)
	mux.HandleFunc("/api/sessions/{id}/regenerate", h.Sessions.Regenerate)
	mux.HandleFunc("/api/sessions/{id}/save", auth(h.Sessions.Save))
	mux.HandleFunc("/api/sessions/{id}/export.pdf", h.Sessions.ExportPDF)
	mux.HandleFunc("/api/sessions/{id}/export.ics", h.Sessions.ExportICS)

	// Saved itineraries
	mux.HandleFunc("/api/itineraries", auth(h.Itineraries.ListItineraries))
	mux.HandleFunc("/api/itineraries/{id}", auth(h.Itineraries.GetItinerary))
	mux.HandleFunc("/api/itineraries/{id}/export.pdf", auth(h.Itineraries.ExportPDF))
	mux.HandleFunc("/api/itineraries/{id}/export.ics", auth(h.Itineraries.ExportICS))

	// API docs
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("Pathfinder backend is running."))
}
