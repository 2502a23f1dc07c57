package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// FestivalStore defines what the festival service needs from the store.
type FestivalStore interface {
	All(ctx context.Context) ([]models.Festival, error)
	FindByRef(ctx context.Context, ref models.Ref) (models.Festival, error)
	Insert(ctx context.Context, fest models.Festival) (models.Ref, error)
	Update(ctx context.Context, ref models.Ref, set bson.M) error
	Delete(ctx context.Context, ref models.Ref) error
	Count(ctx context.Context) (int64, error)
}

// FestivalService provides catalog operations for festivals.
type FestivalService struct {
	store FestivalStore
}

// NewFestivalService creates a new FestivalService.
func NewFestivalService(store FestivalStore) *FestivalService {
	return &FestivalService{store: store}
}

// List returns all festivals.
func (s *FestivalService) List(ctx context.Context) ([]models.Festival, error) {
	return s.store.All(ctx)
}

// Get returns one festival by structured or raw id.
func (s *FestivalService) Get(ctx context.Context, ref string) (models.Festival, error) {
	return s.store.FindByRef(ctx, models.ParseRef(ref))
}

// Create persists a new festival.
func (s *FestivalService) Create(ctx context.Context, fest models.Festival) (models.Festival, error) {
	if fest.Name == "" {
		return models.Festival{}, apperr.New(apperr.ErrValidation, "Invalid data")
	}
	fest.CreatedAt = time.Now().UTC()
	id, err := s.store.Insert(ctx, fest)
	if err != nil {
		return models.Festival{}, err
	}
	fest.ID = id
	return fest, nil
}

// Update applies a partial update.
func (s *FestivalService) Update(ctx context.Context, ref string, data map[string]any) error {
	if len(data) == 0 {
		return apperr.New(apperr.ErrValidation, "No update data")
	}
	return s.store.Update(ctx, models.ParseRef(ref), bson.M(data))
}

// Delete removes a festival.
func (s *FestivalService) Delete(ctx context.Context, ref string) error {
	return s.store.Delete(ctx, models.ParseRef(ref))
}
