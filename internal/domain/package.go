package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DurationMonthly = "monthly"
	DurationYearly  = "yearly"

	MsgPriceNotPositive = "Price must be a positive number"
	MsgInvalidDuration  = "Invalid duration. Use either 'monthly' or 'yearly'"
)

// Package is a membership plan offered by the gym.
type Package struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Duration    string             `bson:"duration" json:"duration"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate checks required fields, the price and the duration.
func (p *Package) Validate() error {
	if err := requireFields(
		"name", p.Name,
		"duration", p.Duration,
		"description", p.Description,
	); err != nil {
		return err
	}
	if p.Price <= 0 {
		return NewValidationError("price", MsgPriceNotPositive)
	}
	if !oneOfFold(p.Duration, DurationMonthly, DurationYearly) {
		return NewValidationError("duration", MsgInvalidDuration)
	}
	return nil
}
