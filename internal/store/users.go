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

// Users reads and writes account documents.
type Users struct {
	col *mongo.Collection
}

// NewUsers creates a Users store over the users collection.
func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

func (u *Users) findOne(ctx context.Context, filter bson.M) (models.Account, error) {
	var acc models.Account
	err := u.col.FindOne(ctx, filter).Decode(&acc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, apperr.New(apperr.ErrNotFound, "User not found")
		}
		return models.Account{}, apperr.Wrap(apperr.ErrInfrastructure, err, "user lookup failed")
	}
	return acc, nil
}

// FindByEmail looks an account up by its normalized email key.
func (u *Users) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

// FindByRef resolves a caller-supplied identifier. Store-generated and legacy
// string ids coexist in the _id field, so the structured interpretation is
// tried first and a miss falls back to a raw string lookup before NotFound.
func (u *Users) FindByRef(ctx context.Context, raw string) (models.Account, error) {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		acc, err := u.findOne(ctx, bson.M{"_id": oid})
		if err == nil {
			return acc, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return models.Account{}, err
		}
	}
	return u.findOne(ctx, bson.M{"_id": raw})
}

// Insert persists a new account and returns the store-assigned id. A
// duplicate email surfaces as a conflict; the unique index is the sole
// arbiter of the one-account-per-email invariant.
func (u *Users) Insert(ctx context.Context, acc models.Account) (models.Ref, error) {
	doc := bson.M{
		"name":       acc.Name,
		"email":      acc.Email,
		"password":   acc.PasswordHash,
		"role":       acc.Role,
		"created_at": acc.CreatedAt,
	}
	res, err := u.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Ref{}, apperr.New(apperr.ErrConflict, "User already exists")
		}
		return models.Ref{}, apperr.Wrap(apperr.ErrInfrastructure, err, "user insert failed")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Ref{}, apperr.Newf(apperr.ErrInfrastructure, "unexpected inserted id type %T", res.InsertedID)
	}
	return models.RefFromObjectID(oid), nil
}

// UpdateProfile sets the auxiliary profile fields and marks the profile
// completed.
func (u *Users) UpdateProfile(ctx context.Context, id models.Ref, bio string, interests []string) error {
	_, err := u.col.UpdateOne(ctx, bson.M{"_id": id.Value()}, bson.M{
		"$set": bson.M{
			"bio":               bio,
			"interests":         interests,
			"profile_completed": true,
		},
	})
	if err != nil {
		return apperr.Wrap(apperr.ErrInfrastructure, err, "profile update failed")
	}
	return nil
}
