package domain

import "time"

// Payment is written by the billing side; this service only reads it.
type Payment struct {
	Amount    float64   `bson:"amount" json:"amount"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
