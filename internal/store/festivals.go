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

// Festivals reads and writes festival documents.
type Festivals struct {
	col *mongo.Collection
}

// NewFestivals creates a Festivals store over the festivals collection.
func NewFestivals(db *mongo.Database) *Festivals {
	return &Festivals{col: db.Collection("festivals")}
}

// All returns every festival in natural order.
func (f *Festivals) All(ctx context.Context) ([]models.Festival, error) {
	cur, err := f.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInfrastructure, err, "festival listing failed")
	}
	var out []models.Festival
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Wrap(apperr.ErrInfrastructure, err, "festival decode failed")
	}
	return out, nil
}

// FindByRef returns the festival matching a structured or raw id.
func (f *Festivals) FindByRef(ctx context.Context, ref models.Ref) (models.Festival, error) {
	var out models.Festival
	err := f.col.FindOne(ctx, bson.M{"_id": ref.Value()}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Festival{}, apperr.New(apperr.ErrNotFound, "Not found")
		}
		return models.Festival{}, apperr.Wrap(apperr.ErrInfrastructure, err, "festival lookup failed")
	}
	return out, nil
}

// Insert persists a new festival and returns the assigned id.
func (f *Festivals) Insert(ctx context.Context, fest models.Festival) (models.Ref, error) {
	doc := bson.M{
		"name":        fest.Name,
		"date":        fest.Date,
		"description": fest.Description,
		"location":    fest.Location,
		"image":       fest.Image,
		"created_at":  fest.CreatedAt,
	}
	res, err := f.col.InsertOne(ctx, doc)
	if err != nil {
		return models.Ref{}, apperr.Wrap(apperr.ErrInfrastructure, err, "festival insert failed")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Ref{}, apperr.Newf(apperr.ErrInfrastructure, "unexpected inserted id type %T", res.InsertedID)
	}
	return models.RefFromObjectID(oid), nil
}

// Update applies a partial document update.
func (f *Festivals) Update(ctx context.Context, ref models.Ref, set bson.M) error {
	delete(set, "_id")
	res, err := f.col.UpdateOne(ctx, bson.M{"_id": ref.Value()}, bson.M{"$set": set})
	if err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "festival update failed")
	}
	if res.MatchedCount == 0 {
		return apperr.New(apperr.ErrNotFound, "Not found")
	}
	return nil
}

// Delete removes a festival.
func (f *Festivals) Delete(ctx context.Context, ref models.Ref) error {
	res, err := f.col.DeleteOne(ctx, bson.M{"_id": ref.Value()})
	if err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "festival delete failed")
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.ErrNotFound, "Not found")
	}
	return nil
}

// Count reports the number of festivals.
func (f *Festivals) Count(ctx context.Context) (int64, error) {
	n, err := f.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperr.Wrap(apperr.ErrInfrastructure, err, "festival count failed")
	}
	return n, nil
}
