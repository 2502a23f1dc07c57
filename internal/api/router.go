package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/explore-karnataka/backend/internal/api/handlers"
	"github.com/explore-karnataka/backend/internal/auth"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	System         *handlers.SystemHandler
	Auth           *handlers.AuthHandler
	Attraction     *handlers.AttractionHandler
	Festival       *handlers.FestivalHandler
	Itinerary      *handlers.ItineraryHandler
	Recommendation *handlers.RecommendationHandler
	Analytics      *handlers.AnalyticsHandler
	Chat           *handlers.ChatHandler
	Image          *handlers.ImageHandler
}

// NewRouter creates and configures a new Chi router.
func NewRouter(guard *auth.Guard, h Handlers, frontendOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.System.Home)
	r.Get("/healthz", h.System.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(guard.RequireAuth).Get("/me", h.Auth.Me)
			r.With(guard.RequireAuth).Put("/profile", h.Auth.UpdateProfile)
		})

		r.Route("/attractions", func(r chi.Router) {
			r.Get("/", h.Attraction.GetAll)
			r.Get("/{id}", h.Attraction.Get)
			r.With(guard.RequireAdmin).Post("/", h.Attraction.Create)
			r.With(guard.RequireAdmin).Put("/{id}", h.Attraction.Update)
			r.With(guard.RequireAdmin).Delete("/{id}", h.Attraction.Delete)
		})

		r.Route("/festivals", func(r chi.Router) {
			r.Get("/", h.Festival.GetAll)
			r.Get("/{id}", h.Festival.Get)
			r.With(guard.RequireAdmin).Post("/", h.Festival.Create)
			r.With(guard.RequireAdmin).Put("/{id}", h.Festival.Update)
			r.With(guard.RequireAdmin).Delete("/{id}", h.Festival.Delete)
		})

		r.Route("/itineraries", func(r chi.Router) {
			r.Use(guard.RequireAuth)
			r.Get("/", h.Itinerary.GetAll)
			r.Post("/", h.Itinerary.Create)
			r.Delete("/{id}", h.Itinerary.Delete)
		})

		r.With(guard.RequireAuth).Get("/recommendations", h.Recommendation.Get)
		r.With(guard.RequireAuth).Post("/chat", h.Chat.Chat)

		r.Route("/admin", func(r chi.Router) {
			r.Use(guard.RequireAdmin)
			r.Get("/check", h.Auth.AdminCheck)
			r.Get("/analytics", h.Analytics.Get)
		})

		r.Post("/image/predict", h.Image.Predict)
	})

	return r
}
