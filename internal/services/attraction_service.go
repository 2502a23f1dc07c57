package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// AttractionStore defines what the attraction service needs from the store.
type AttractionStore interface {
	All(ctx context.Context) ([]models.Attraction, error)
	FindByRef(ctx context.Context, ref models.Ref) (models.Attraction, error)
	Insert(ctx context.Context, att models.Attraction) (models.Ref, error)
	Update(ctx context.Context, ref models.Ref, set bson.M) error
	Delete(ctx context.Context, ref models.Ref) error
	Count(ctx context.Context) (int64, error)
}

// AttractionService provides catalog operations for attractions.
type AttractionService struct {
	store AttractionStore
}

// NewAttractionService creates a new AttractionService.
func NewAttractionService(store AttractionStore) *AttractionService {
	return &AttractionService{store: store}
}

// List returns the full catalog.
func (s *AttractionService) List(ctx context.Context) ([]models.Attraction, error) {
	return s.store.All(ctx)
}

// Get returns one attraction by structured or raw id.
func (s *AttractionService) Get(ctx context.Context, ref string) (models.Attraction, error) {
	return s.store.FindByRef(ctx, models.ParseRef(ref))
}

// Create persists a new attraction.
func (s *AttractionService) Create(ctx context.Context, att models.Attraction) (models.Attraction, error) {
	if att.Name == "" {
		return models.Attraction{}, apperr.New(apperr.ErrValidation, "Invalid data")
	}
	att.CreatedAt = time.Now().UTC()
	id, err := s.store.Insert(ctx, att)
	if err != nil {
		return models.Attraction{}, err
	}
	att.ID = id
	return att, nil
}

// Update applies a partial update.
func (s *AttractionService) Update(ctx context.Context, ref string, data map[string]any) error {
	if len(data) == 0 {
		return apperr.New(apperr.ErrValidation, "No update data")
	}
	return s.store.Update(ctx, models.ParseRef(ref), bson.M(data))
}

// Delete removes an attraction.
func (s *AttractionService) Delete(ctx context.Context, ref string) error {
	return s.store.Delete(ctx, models.ParseRef(ref))
}
