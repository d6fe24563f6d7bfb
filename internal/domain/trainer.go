package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Trainer is a staff member. AssignedClasses holds a class id by convention;
// it is not checked against the classes collection.
type Trainer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Speciality      string             `bson:"speciality" json:"speciality"`
	AssignedClasses string             `bson:"assignedClasses" json:"assignedClasses"`
	ContactInfo     string             `bson:"contactInfo" json:"contactInfo"`
	Status          string             `bson:"status" json:"status"`
	ClassSchedule   []string           `bson:"classSchedule,omitempty" json:"classSchedule,omitempty"`
}

// ApplyDefaults fills optional fields the add-trainer form does not send.
func (t *Trainer) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusActive
	}
}

// Validate checks required fields and the status enumeration.
func (t *Trainer) Validate() error {
	if err := requireFields(
		"name", t.Name,
		"speciality", t.Speciality,
		"assignedClasses", t.AssignedClasses,
		"contactInfo", t.ContactInfo,
		"status", t.Status,
	); err != nil {
		return err
	}
	if !oneOfFold(t.Status, StatusActive, StatusInactive) {
		return NewValidationError("status", "Invalid status. Use either 'active' or 'inactive'")
	}
	return nil
}

// TrainerFilter holds optional equality filters for trainer search.
type TrainerFilter struct {
	Name       string
	Speciality string
	Status     string
}
