package services

import (
	"context"
	"strings"

	"github.com/explore-karnataka/backend/internal/models"
)

// DefaultRecommendationLimit caps a recommendation response.
const DefaultRecommendationLimit = 12

// MatchInterests selects catalog entries whose category contains any of the
// interests, case-insensitively, keeping the catalog's own order and
// truncating to limit. No interests means no recommendations; there is no
// generic fallback list. This is deliberately a filter, not a ranking.
func MatchInterests(interests []string, entries []models.Attraction, limit int) []models.Attraction {
	if len(interests) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	var out []models.Attraction
	for _, e := range entries {
		category := strings.ToLower(e.Category)
		for _, interest := range interests {
			if strings.Contains(category, strings.ToLower(interest)) {
				out = append(out, e)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// AttractionCatalog is the catalog source for recommendations.
type AttractionCatalog interface {
	All(ctx context.Context) ([]models.Attraction, error)
}

// Recommendation is the projected attraction view returned to clients.
type Recommendation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

// RecommendationService computes per-account recommendations on demand;
// nothing is cached or persisted.
type RecommendationService struct {
	catalog AttractionCatalog
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(catalog AttractionCatalog) *RecommendationService {
	return &RecommendationService{catalog: catalog}
}

// ForInterests matches the catalog against a user's declared interests.
func (s *RecommendationService) ForInterests(ctx context.Context, interests []string) ([]Recommendation, error) {
	if len(interests) == 0 {
		return []Recommendation{}, nil
	}
	entries, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := MatchInterests(interests, entries, DefaultRecommendationLimit)
	out := make([]Recommendation, 0, len(matched))
	for _, m := range matched {
		out = append(out, Recommendation{
			ID:          m.ID.String(),
			Name:        m.Name,
			Category:    m.Category,
			Images:      m.Images,
			Description: m.Description,
		})
	}
	return out, nil
}
