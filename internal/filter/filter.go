package filter

import (
	"strings"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

// Criteria holds the filter fields of the dashboard.
// An empty field imposes no constraint.
type Criteria struct {
	SearchTerm string `json:"search"`     // case-insensitive substring of product or region
	StartDate  string `json:"start_date"` // inclusive lower bound, compared as a string
	EndDate    string `json:"end_date"`   // inclusive upper bound, compared as a string
	Category   string `json:"category"`   // exact match
	Status     string `json:"status"`     // exact match
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Matches reports whether o satisfies every active criterion.
func (c Criteria) Matches(o order.Order) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(o.Product), term) &&
			!strings.Contains(strings.ToLower(o.Region), term) {
			return false
		}
	}

	// ISO dates order correctly as strings.
	if c.StartDate != "" && o.Date < c.StartDate {
		return false
	}

	if c.EndDate != "" && o.Date > c.EndDate {
		return false
	}

	if c.Category != "" && o.Category != c.Category {
		return false
	}

	if c.Status != "" && string(o.Status) != c.Status {
		return false
	}

	return true
}

// Apply returns the orders matching c, keeping their relative order.
// The input slice is never modified.
func Apply(orders []order.Order, c Criteria) []order.Order {
	result := make([]order.Order, 0, len(orders))

	for _, o := range orders {
		if c.Matches(o) {
			result = append(result, o)
		}
	}

	return result
}
