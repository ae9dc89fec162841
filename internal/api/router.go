package api

import (
	"net/http"

	"github.com/dom/staybook/internal/api/handlers"
	"github.com/dom/staybook/internal/api/middleware"
	"github.com/dom/staybook/internal/config"
	"github.com/dom/staybook/internal/service"
	"github.com/dom/staybook/internal/storage"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

func NewRouter(services *service.Services, store storage.BlobStore, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log.Logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"test ok"`))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg.IsProduction())
	placeHandler := handlers.NewPlaceHandler(services.Place)
	bookingHandler := handlers.NewBookingHandler(services.Booking)
	uploadHandler := handlers.NewUploadHandler(services.Upload, store, cfg.MaxUploadBytes)

	// Public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Post("/upload", uploadHandler.Upload)
	r.Post("/upload-by-link", uploadHandler.UploadByLink)
	r.Get("/uploads/{name}", uploadHandler.Serve)
	r.Head("/uploads/{name}", uploadHandler.Serve)

	r.Get("/places", placeHandler.ListAll)
	r.Get("/places/{id}", placeHandler.Get)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Tokens))

		r.Get("/profile", authHandler.Profile)

		r.Post("/places", placeHandler.Create)
		r.Put("/places", placeHandler.Update)
		r.Get("/user-places", placeHandler.ListMine)

		r.Post("/bookings", bookingHandler.Create)
		r.Get("/bookings", bookingHandler.List)
	})

	return r
}
