package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Membership types and statuses accepted for clients.
const (
	MembershipBasic   = "basic"
	MembershipPremium = "premium"
	MembershipVIP     = "vip"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Client is a gym member.
type Client struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	MembershipType string             `bson:"membershipType" json:"membershipType"`
	Status         string             `bson:"status" json:"status"`
	JoinDate       string             `bson:"joinDate" json:"joinDate"`

	// PhotoKey is the object storage key of the member photo, if any.
	PhotoKey string `bson:"photoKey,omitempty" json:"-"`
}

// Validate checks required fields and enumerations.
func (c *Client) Validate() error {
	if err := requireFields(
		"name", c.Name,
		"membershipType", c.MembershipType,
		"status", c.Status,
		"joinDate", c.JoinDate,
	); err != nil {
		return err
	}
	if !oneOfFold(c.MembershipType, MembershipBasic, MembershipPremium, MembershipVIP) {
		return NewValidationError("membershipType", "Invalid membership type. Use one of: basic, premium, vip")
	}
	if !oneOfFold(c.Status, StatusActive, StatusInactive) {
		return NewValidationError("status", "Invalid status. Use either 'active' or 'inactive'")
	}
	return nil
}

// ClientFilter holds optional equality filters for client search.
// Empty fields are ignored; set fields are combined with AND.
type ClientFilter struct {
	Name           string
	MembershipType string
	Status         string
}
