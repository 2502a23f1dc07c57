package models

import "time"

// Attraction is a catalog entry for a place worth visiting.
type Attraction struct {
	ID          Ref       `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	EcoScore    *float64  `bson:"eco_score,omitempty" json:"eco_score,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images"`
	Videos      []string  `bson:"videos,omitempty" json:"videos"`
	AudioStory  string    `bson:"audio_story_url,omitempty" json:"audio_story_url,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags"`
	BestSeason  string    `bson:"best_season,omitempty" json:"best_season,omitempty"`
	MapURL      string    `bson:"map_url,omitempty" json:"map_url,omitempty"`
	ARModelURL  string    `bson:"ar_model_url,omitempty" json:"ar_model_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
