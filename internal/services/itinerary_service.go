package services

import (
	"context"
	"errors"
	"time"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// ItineraryStore defines what the itinerary service needs from the store.
type ItineraryStore interface {
	ListByUser(ctx context.Context, user models.Ref) ([]models.ItineraryEntry, error)
	Exists(ctx context.Context, user models.Ref, attractionID string) (bool, error)
	Insert(ctx context.Context, entry models.ItineraryEntry) error
	Delete(ctx context.Context, id, user models.Ref) error
}

// ItineraryAttractions is the attraction lookup the listing join needs.
type ItineraryAttractions interface {
	FindByRef(ctx context.Context, ref models.Ref) (models.Attraction, error)
}

// ItineraryService manages per-user saved attractions.
type ItineraryService struct {
	entries     ItineraryStore
	attractions ItineraryAttractions
}

// NewItineraryService creates a new ItineraryService.
func NewItineraryService(entries ItineraryStore, attractions ItineraryAttractions) *ItineraryService {
	return &ItineraryService{entries: entries, attractions: attractions}
}

// List returns the account's itinerary joined with attraction summaries.
// Entries whose attraction has since been deleted are skipped.
func (s *ItineraryService) List(ctx context.Context, user models.Ref) ([]models.ItineraryItem, error) {
	entries, err := s.entries.ListByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	items := make([]models.ItineraryItem, 0, len(entries))
	for _, e := range entries {
		att, err := s.attractions.FindByRef(ctx, models.ParseRef(e.AttractionID))
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				continue
			}
			return nil, err
		}
		season := att.BestSeason
		if season == "" {
			season = "All Year"
		}
		items = append(items, models.ItineraryItem{
			ID:           e.ID.String(),
			AttractionID: att.ID.String(),
			Name:         att.Name,
			Category:     att.Category,
			Images:       att.Images,
			BestSeason:   season,
		})
	}
	return items, nil
}

// Add saves an attraction to the account's itinerary, rejecting duplicates.
func (s *ItineraryService) Add(ctx context.Context, user models.Ref, attractionID string) error {
	if attractionID == "" {
		return apperr.New(apperr.ErrValidation, "Attraction ID is required")
	}
	exists, err := s.entries.Exists(ctx, user, attractionID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.New(apperr.ErrConflict, "Already added")
	}
	return s.entries.Insert(ctx, models.ItineraryEntry{
		UserID:       user,
		AttractionID: attractionID,
		CreatedAt:    time.Now().UTC(),
	})
}

// Remove deletes one itinerary entry owned by the account.
func (s *ItineraryService) Remove(ctx context.Context, user models.Ref, id string) error {
	return s.entries.Delete(ctx, models.ParseRef(id), user)
}
