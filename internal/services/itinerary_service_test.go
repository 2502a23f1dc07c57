package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

type fakeItineraryStore struct {
	entries []models.ItineraryEntry
}

func (f *fakeItineraryStore) ListByUser(ctx context.Context, user models.Ref) ([]models.ItineraryEntry, error) {
	var out []models.ItineraryEntry
	for _, e := range f.entries {
		if e.UserID.String() == user.String() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeItineraryStore) Exists(ctx context.Context, user models.Ref, attractionID string) (bool, error) {
	for _, e := range f.entries {
		if e.UserID.String() == user.String() && e.AttractionID == attractionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItineraryStore) Insert(ctx context.Context, entry models.ItineraryEntry) error {
	entry.ID = models.ParseRef("entry-" + entry.AttractionID)
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeItineraryStore) Delete(ctx context.Context, id, user models.Ref) error {
	for i, e := range f.entries {
		if e.ID.String() == id.String() && e.UserID.String() == user.String() {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return apperr.New(apperr.ErrNotFound, "Itinerary not found")
}

type fakeAttractionLookup struct {
	byRef map[string]models.Attraction
}

func (f *fakeAttractionLookup) FindByRef(ctx context.Context, ref models.Ref) (models.Attraction, error) {
	att, ok := f.byRef[ref.String()]
	if !ok {
		return models.Attraction{}, apperr.New(apperr.ErrNotFound, "Not found")
	}
	return att, nil
}

func TestItineraryAdd_RejectsDuplicate(t *testing.T) {
	t.Parallel()

	entries := &fakeItineraryStore{}
	svc := NewItineraryService(entries, &fakeAttractionLookup{})
	user := models.ParseRef("64f1a0c8e4b0a1b2c3d4e5f6")

	require.NoError(t, svc.Add(context.Background(), user, "att-1"))
	err := svc.Add(context.Background(), user, "att-1")
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.Equal(t, "Already added", apperr.Message(err))
}

func TestItineraryAdd_RequiresAttractionID(t *testing.T) {
	t.Parallel()

	svc := NewItineraryService(&fakeItineraryStore{}, &fakeAttractionLookup{})
	err := svc.Add(context.Background(), models.ParseRef("u1"), "")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestItineraryList_JoinsAndSkipsMissing(t *testing.T) {
	t.Parallel()

	user := models.ParseRef("64f1a0c8e4b0a1b2c3d4e5f6")
	entries := &fakeItineraryStore{}
	lookup := &fakeAttractionLookup{byRef: map[string]models.Attraction{
		"att-1": {ID: models.ParseRef("att-1"), Name: "Hampi", Category: "Heritage"},
	}}
	svc := NewItineraryService(entries, lookup)

	require.NoError(t, svc.Add(context.Background(), user, "att-1"))
	require.NoError(t, svc.Add(context.Background(), user, "att-gone"))

	items, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hampi", items[0].Name)
	require.Equal(t, "All Year", items[0].BestSeason)
}

func TestItineraryRemove_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewItineraryService(&fakeItineraryStore{}, &fakeAttractionLookup{})
	err := svc.Remove(context.Background(), models.ParseRef("u1"), "missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
