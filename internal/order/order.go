package order

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// Known reports whether s is one of the three recognized statuses.
// Unknown statuses are valid data, they only lose their styling.
func (s Status) Known() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a single sales record. Orders are never modified once loaded.
type Order struct {
	ID       int64  `json:"id"`
	Date     string `json:"date" validate:"required,calendardate"`
	Product  string `json:"product"`
	Category string `json:"category"`
	Region   string `json:"region"`
	Amount   int64  `json:"amount" validate:"gte=0"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
	Status   Status `json:"status"`
}

// ISODate is the canonical layout for order dates.
const ISODate = "2006-01-02"

var dateLayouts = []string{
	ISODate,
	"2006-1-2",
	time.RFC3339,
}

// ParseDate parses an order date as a calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid calendar date %q", value)
}

// NormalizeDate returns the ISO form of value, or value itself when it does not parse.
func NormalizeDate(value string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}

	return t.Format(ISODate)
}
