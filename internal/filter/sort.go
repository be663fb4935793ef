package filter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

// SortField represents a field that can be sorted on.
type SortField string

const (
	SortByID       SortField = "id"
	SortByDate     SortField = "date"
	SortByProduct  SortField = "product"
	SortByCategory SortField = "category"
	SortByRegion   SortField = "region"
	SortByAmount   SortField = "amount"
	SortByQuantity SortField = "quantity"
	SortByStatus   SortField = "status"
)

// SortFields lists every sortable field in table column order.
var SortFields = []SortField{
	SortByID,
	SortByDate,
	SortByProduct,
	SortByCategory,
	SortByRegion,
	SortByAmount,
	SortByQuantity,
	SortByStatus,
}

func (f SortField) Valid() bool {
	return slices.Contains(SortFields, f)
}

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

func (d SortDirection) Reverse() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortOptions holds sorting preferences.
type SortOptions struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortOptions returns the default sort (id descending, newest orders first).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field:     SortByID,
		Direction: SortDesc,
	}
}

// String returns the sort options as a string (e.g., "id:desc").
func (s SortOptions) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// Toggle returns the options after the user selects field: the same field
// flips direction, a different field starts ascending.
func (s SortOptions) Toggle(field SortField) SortOptions {
	if s.Field == field {
		return SortOptions{Field: field, Direction: s.Direction.Reverse()}
	}

	return SortOptions{Field: field, Direction: SortAsc}
}

// Sort returns a stably sorted copy of orders.
func Sort(orders []order.Order, opts SortOptions) []order.Order {
	sorted := slices.Clone(orders)
	if sorted == nil {
		sorted = []order.Order{}
	}

	compare := comparator(opts.Field)
	if opts.Direction == SortDesc {
		slices.SortStableFunc(sorted, func(a, b order.Order) int {
			return compare(b, a)
		})
	} else {
		slices.SortStableFunc(sorted, compare)
	}

	return sorted
}

func comparator(field SortField) func(a, b order.Order) int {
	switch field {
	case SortByID:
		return func(a, b order.Order) int { return cmp.Compare(a.ID, b.ID) }
	case SortByAmount:
		return func(a, b order.Order) int { return cmp.Compare(a.Amount, b.Amount) }
	case SortByQuantity:
		return func(a, b order.Order) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case SortByDate:
		return compareDates
	case SortByProduct:
		return byText(func(o order.Order) string { return o.Product })
	case SortByCategory:
		return byText(func(o order.Order) string { return o.Category })
	case SortByRegion:
		return byText(func(o order.Order) string { return o.Region })
	case SortByStatus:
		return byText(func(o order.Order) string { return string(o.Status) })
	default:
		return func(order.Order, order.Order) int { return 0 }
	}
}

// compareDates orders by calendar date. Dates that do not parse fall back to
// a plain string comparison.
func compareDates(a, b order.Order) int {
	ta, errA := order.ParseDate(a.Date)
	tb, errB := order.ParseDate(b.Date)
	if errA != nil || errB != nil {
		return strings.Compare(a.Date, b.Date)
	}

	return ta.Compare(tb)
}

func byText(value func(order.Order) string) func(a, b order.Order) int {
	return func(a, b order.Order) int {
		return strings.Compare(strings.ToLower(value(a)), strings.ToLower(value(b)))
	}
}

// ParseSort parses a sort string like "amount:asc" into SortOptions.
func ParseSort(s string) (SortOptions, error) {
	if s == "" {
		return SortOptions{}, fmt.Errorf("sort string cannot be empty")
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return SortOptions{}, fmt.Errorf("invalid sort format, expected field:direction")
	}

	field := SortField(parts[0])
	direction := SortDirection(parts[1])

	if !field.Valid() {
		return SortOptions{}, fmt.Errorf("invalid sort field: %s", field)
	}

	if !direction.Valid() {
		return SortOptions{}, fmt.Errorf("invalid sort direction: %s (must be asc or desc)", direction)
	}

	return SortOptions{
		Field:     field,
		Direction: direction,
	}, nil
}
