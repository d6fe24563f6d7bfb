package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weekdays lists the accepted class days in calendar order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var timeOfDayPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

const (
	MsgClassNameLength = "Class name must be between 3 and 50 characters long"
	MsgInvalidTime     = "Invalid time format. Use HH:MM in 24-hour format"
	MsgEndBeforeStart  = "End time must be after start time"
)

// Class is a recurring weekly session.
type Class struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Day       string             `bson:"day" json:"day"`
	StartTime string             `bson:"startTime" json:"startTime"`
	EndTime   string             `bson:"endTime" json:"endTime"`
}

// Validate enforces the class rules. Times are compared as strings, so
// "9:00" sorts after "10:00"; callers should send zero-padded hours.
func (c *Class) Validate() error {
	if err := requireFields(
		"name", c.Name,
		"day", c.Day,
		"startTime", c.StartTime,
		"endTime", c.EndTime,
	); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(c.Name); n < 3 || n > 50 {
		return NewValidationError("name", MsgClassNameLength)
	}
	if !IsWeekday(c.Day) {
		return NewValidationError("day", "Invalid day. Choose one from: "+strings.Join(Weekdays, ", "))
	}
	if !timeOfDayPattern.MatchString(c.StartTime) {
		return NewValidationError("startTime", MsgInvalidTime)
	}
	if !timeOfDayPattern.MatchString(c.EndTime) {
		return NewValidationError("endTime", MsgInvalidTime)
	}
	if c.EndTime <= c.StartTime {
		return NewValidationError("endTime", MsgEndBeforeStart)
	}
	return nil
}

// IsWeekday reports whether day is one of Weekdays (case-sensitive).
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
