package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/ai/classifier"
	"github.com/explore-karnataka/backend/internal/ai/groq"
	"github.com/explore-karnataka/backend/internal/api"
	"github.com/explore-karnataka/backend/internal/api/handlers"
	"github.com/explore-karnataka/backend/internal/auth"
	"github.com/explore-karnataka/backend/internal/config"
	"github.com/explore-karnataka/backend/internal/database"
	"github.com/explore-karnataka/backend/internal/logger"
	"github.com/explore-karnataka/backend/internal/services"
	"github.com/explore-karnataka/backend/internal/store"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	// Set up the document store
	db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the store")
	}
	defer db.Client().Disconnect(context.Background())

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// Set up stores
	users := store.NewUsers(db)
	attractions := store.NewAttractions(db)
	festivals := store.NewFestivals(db)
	itineraries := store.NewItineraries(db)

	// Set up services
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(users, tokens, cfg.AdminCode)
	attractionService := services.NewAttractionService(attractions)
	festivalService := services.NewFestivalService(festivals)
	itineraryService := services.NewItineraryService(itineraries, attractions)
	recommendationService := services.NewRecommendationService(attractions)
	analyticsService := services.NewAnalyticsService(attractions, festivals)
	chatService := services.NewChatService(groq.New(cfg.GroqAPIKey, cfg.GroqModel))

	guard := auth.NewGuard(tokens, userService)

	// Set up router
	router := api.NewRouter(guard, api.Handlers{
		System: handlers.NewSystemHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
		Auth:           handlers.NewAuthHandler(userService),
		Attraction:     handlers.NewAttractionHandler(attractionService),
		Festival:       handlers.NewFestivalHandler(festivalService),
		Itinerary:      handlers.NewItineraryHandler(itineraryService),
		Recommendation: handlers.NewRecommendationHandler(recommendationService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		Chat:           handlers.NewChatHandler(chatService),
		Image:          handlers.NewImageHandler(classifier.New(cfg.ClassifierURL), cfg.UploadDir),
	}, cfg.FrontendOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
