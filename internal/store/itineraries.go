package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// Itineraries reads and writes itinerary entries.
type Itineraries struct {
	col *mongo.Collection
}

// NewItineraries creates an Itineraries store over the itineraries collection.
func NewItineraries(db *mongo.Database) *Itineraries {
	return &Itineraries{col: db.Collection("itineraries")}
}

// ListByUser returns every entry saved by one account.
func (i *Itineraries) ListByUser(ctx context.Context, user models.Ref) ([]models.ItineraryEntry, error) {
	cur, err := i.col.Find(ctx, bson.M{"user_id": user.Value()})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInfrastructure, err, "itinerary listing failed")
	}
	var out []models.ItineraryEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Wrap(apperr.ErrInfrastructure, err, "itinerary decode failed")
	}
	return out, nil
}

// Exists reports whether the account already saved the attraction.
func (i *Itineraries) Exists(ctx context.Context, user models.Ref, attractionID string) (bool, error) {
	err := i.col.FindOne(ctx, bson.M{"user_id": user.Value(), "attraction_id": attractionID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, apperr.Wrap(apperr.ErrInfrastructure, err, "itinerary lookup failed")
	}
	return true, nil
}

// Insert persists a new itinerary entry.
func (i *Itineraries) Insert(ctx context.Context, entry models.ItineraryEntry) error {
	doc := bson.M{
		"user_id":       entry.UserID.Value(),
		"attraction_id": entry.AttractionID,
		"created_at":    entry.CreatedAt,
	}
	if _, err := i.col.InsertOne(ctx, doc); err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "itinerary insert failed")
	}
	return nil
}

// Delete removes one entry, scoped to its owner.
func (i *Itineraries) Delete(ctx context.Context, id, user models.Ref) error {
	res, err := i.col.DeleteOne(ctx, bson.M{"_id": id.Value(), "user_id": user.Value()})
	if err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "itinerary delete failed")
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.ErrNotFound, "Itinerary not found")
	}
	return nil
}
