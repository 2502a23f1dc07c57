package services

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// VisitorTrend is one month of (currently mocked) visitor volume.
type VisitorTrend struct {
	Month    string `json:"month"`
	Visitors int    `json:"visitors"`
}

// AnalyticsReport is the admin dashboard payload.
type AnalyticsReport struct {
	TotalVisitors        int            `json:"total_visitors"`
	AttractionsCount     int64          `json:"attractions_count"`
	FestivalsCount       int64          `json:"festivals_count"`
	AvgEcoScore          float64        `json:"avg_eco_score"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	VisitorTrends        []VisitorTrend `json:"visitor_trends"`
}

// AnalyticsService aggregates catalog statistics for the admin dashboard.
type AnalyticsService struct {
	attractions AttractionStore
	festivals   FestivalStore
	rng         *rand.Rand
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(attractions AttractionStore, festivals FestivalStore) *AnalyticsService {
	return &AnalyticsService{
		attractions: attractions,
		festivals:   festivals,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Report computes counts, the average eco score, the category distribution
// and a mocked monthly visitor trend.
func (s *AnalyticsService) Report(ctx context.Context) (AnalyticsReport, error) {
	attractionsCount, err := s.attractions.Count(ctx)
	if err != nil {
		return AnalyticsReport{}, err
	}
	festivalsCount, err := s.festivals.Count(ctx)
	if err != nil {
		return AnalyticsReport{}, err
	}

	entries, err := s.attractions.All(ctx)
	if err != nil {
		return AnalyticsReport{}, err
	}

	var ecoSum float64
	var ecoCount int
	distribution := make(map[string]int)
	for _, a := range entries {
		if a.EcoScore != nil {
			ecoSum += *a.EcoScore
			ecoCount++
		}
		category := a.Category
		if category == "" {
			category = "Uncategorized"
		}
		distribution[category]++
	}
	var avgEco float64
	if ecoCount > 0 {
		avgEco = math.Round(ecoSum/float64(ecoCount)*100) / 100
	}

	// Visitor numbers are mocked until a real counter exists.
	trends := make([]VisitorTrend, 0, len(months))
	total := 0
	for _, m := range months {
		visitors := 1000 + s.rng.Intn(4001)
		total += visitors
		trends = append(trends, VisitorTrend{Month: m, Visitors: visitors})
	}

	return AnalyticsReport{
		TotalVisitors:        total,
		AttractionsCount:     attractionsCount,
		FestivalsCount:       festivalsCount,
		AvgEcoScore:          avgEco,
		CategoryDistribution: distribution,
		VisitorTrends:        trends,
	}, nil
}
