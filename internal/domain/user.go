package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Credential is an account in the credential store. Its hex ID is the user's uid.
type Credential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"uid"`
	Email        string             `bson:"email" json:"email"`    // unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // never serialised
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// UID returns the credential id as the string form used in tokens and profiles.
func (c *Credential) UID() string {
	return c.ID.Hex()
}

// User is the profile document stored under the credential's uid.
type User struct {
	UID      string `bson:"_id" json:"uid"`
	Email    string `bson:"email" json:"email"`
	Name     string `bson:"name" json:"name"`
	JoinDate string `bson:"joinDate" json:"joinDate"` // RFC 3339, set at sign-up
}
