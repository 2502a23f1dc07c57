package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// Attractions reads and writes attraction documents.
type Attractions struct {
	col *mongo.Collection
}

// NewAttractions creates an Attractions store over the attractions collection.
func NewAttractions(db *mongo.Database) *Attractions {
	return &Attractions{col: db.Collection("attractions")}
}

// All returns the catalog in its natural enumeration order.
func (a *Attractions) All(ctx context.Context) ([]models.Attraction, error) {
	cur, err := a.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInfrastructure, err, "attraction listing failed")
	}
	var out []models.Attraction
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Wrap(apperr.ErrInfrastructure, err, "attraction decode failed")
	}
	return out, nil
}

// FindByRef returns the attraction matching a structured or raw id.
func (a *Attractions) FindByRef(ctx context.Context, ref models.Ref) (models.Attraction, error) {
	var out models.Attraction
	err := a.col.FindOne(ctx, bson.M{"_id": ref.Value()}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Attraction{}, apperr.New(apperr.ErrNotFound, "Not found")
		}
		return models.Attraction{}, apperr.Wrap(apperr.ErrInfrastructure, err, "attraction lookup failed")
	}
	return out, nil
}

// Insert persists a new attraction and returns the assigned id.
func (a *Attractions) Insert(ctx context.Context, att models.Attraction) (models.Ref, error) {
	doc := bson.M{
		"name":            att.Name,
		"category":        att.Category,
		"description":     att.Description,
		"eco_score":       att.EcoScore,
		"images":          att.Images,
		"videos":          att.Videos,
		"audio_story_url": att.AudioStory,
		"tags":            att.Tags,
		"best_season":     att.BestSeason,
		"map_url":         att.MapURL,
		"ar_model_url":    att.ARModelURL,
		"created_at":      att.CreatedAt,
	}
	res, err := a.col.InsertOne(ctx, doc)
	if err != nil {
		return models.Ref{}, apperr.Wrap(apperr.ErrInfrastructure, err, "attraction insert failed")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Ref{}, apperr.Newf(apperr.ErrInfrastructure, "unexpected inserted id type %T", res.InsertedID)
	}
	return models.RefFromObjectID(oid), nil
}

// Update applies a partial document update.
func (a *Attractions) Update(ctx context.Context, ref models.Ref, set bson.M) error {
	delete(set, "_id")
	res, err := a.col.UpdateOne(ctx, bson.M{"_id": ref.Value()}, bson.M{"$set": set})
	if err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "attraction update failed")
	}
	if res.MatchedCount == 0 {
		return apperr.New(apperr.ErrNotFound, "Not found")
	}
	return nil
}

// Delete removes an attraction.
func (a *Attractions) Delete(ctx context.Context, ref models.Ref) error {
	res, err := a.col.DeleteOne(ctx, bson.M{"_id": ref.Value()})
	if err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "attraction delete failed")
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.ErrNotFound, "Not found")
	}
	return nil
}

// Count reports the catalog size.
func (a *Attractions) Count(ctx context.Context) (int64, error) {
	n, err := a.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperr.Wrap(apperr.ErrInfrastructure, err, "attraction count failed")
	}
	return n, nil
}
