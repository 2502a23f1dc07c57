package models

import "time"

// ItineraryEntry links an account to a saved attraction.
type ItineraryEntry struct {
	ID           Ref       `bson:"_id" json:"id"`
	UserID       Ref       `bson:"user_id" json:"-"`
	AttractionID string    `bson:"attraction_id" json:"attraction_id"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// ItineraryItem is an entry joined with its attraction summary for listings.
type ItineraryItem struct {
	ID           string   `json:"id"`
	AttractionID string   `json:"attraction_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Images       []string `json:"images"`
	BestSeason   string   `json:"best_season"`
}
