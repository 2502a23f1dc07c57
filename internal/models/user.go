package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account represents a registered user.
type Account struct {
	ID               Ref       `bson:"_id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"password" json:"-"` // Never expose this to the client
	Role             Role      `bson:"role" json:"role"`
	Bio              string    `bson:"bio,omitempty" json:"bio"`
	Interests        []string  `bson:"interests,omitempty" json:"interests"`
	ProfileCompleted bool      `bson:"profile_completed,omitempty" json:"profile_completed"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// PublicAccount is the account view returned by auth endpoints.
type PublicAccount struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Role             Role     `json:"role"`
	Bio              string   `json:"bio,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	ProfileCompleted bool     `json:"profile_completed,omitempty"`
}

// Public strips everything a client must not see.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:               a.ID.String(),
		Name:             a.Name,
		Email:            a.Email,
		Role:             a.Role,
		Bio:              a.Bio,
		Interests:        a.Interests,
		ProfileCompleted: a.ProfileCompleted,
	}
}
