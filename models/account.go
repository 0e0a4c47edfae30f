package models

import "time"

// Account roles.
const (
	RoleAgent  = "agent"
	RoleClient = "client"
)

// Account represents a registered platform account (agent or client).
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"` // plain-text input only, never persisted
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber,omitempty"`
	Role         string    `bson:"role" json:"role"` // "agent" or "client"
	Verified     bool      `bson:"verified" json:"verified"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
