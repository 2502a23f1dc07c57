package models

import "time"

// Festival is a catalog entry for a cultural event.
type Festival struct {
	ID          Ref       `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Date        string    `bson:"date,omitempty" json:"date,omitempty"`
	Description string    `bson:"description,omitempty" json:"description"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
