package services

import (
	"context"

	"github.com/explore-karnataka/backend/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, name, email, password, adminCode string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	ResolveAccount(ctx context.Context, ref string) (models.Account, error)
	UpdateProfile(ctx context.Context, id models.Ref, bio string, interests []string) (Profile, error)
}

// AttractionServiceProvider defines the interface for attraction services.
type AttractionServiceProvider interface {
	List(ctx context.Context) ([]models.Attraction, error)
	Get(ctx context.Context, ref string) (models.Attraction, error)
	Create(ctx context.Context, att models.Attraction) (models.Attraction, error)
	Update(ctx context.Context, ref string, data map[string]any) error
	Delete(ctx context.Context, ref string) error
}

// FestivalServiceProvider defines the interface for festival services.
type FestivalServiceProvider interface {
	List(ctx context.Context) ([]models.Festival, error)
	Get(ctx context.Context, ref string) (models.Festival, error)
	Create(ctx context.Context, fest models.Festival) (models.Festival, error)
	Update(ctx context.Context, ref string, data map[string]any) error
	Delete(ctx context.Context, ref string) error
}

// ItineraryServiceProvider defines the interface for itinerary services.
type ItineraryServiceProvider interface {
	List(ctx context.Context, user models.Ref) ([]models.ItineraryItem, error)
	Add(ctx context.Context, user models.Ref, attractionID string) error
	Remove(ctx context.Context, user models.Ref, id string) error
}

// RecommendationServiceProvider defines the interface for recommendations.
type RecommendationServiceProvider interface {
	ForInterests(ctx context.Context, interests []string) ([]Recommendation, error)
}

// AnalyticsServiceProvider defines the interface for admin analytics.
type AnalyticsServiceProvider interface {
	Report(ctx context.Context) (AnalyticsReport, error)
}

// ChatServiceProvider defines the interface for the tourism assistant.
type ChatServiceProvider interface {
	Ask(ctx context.Context, interests []string, message string) (string, error)
}
