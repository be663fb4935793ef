package util

import (
	"fmt"
	"strconv"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

const (
	thousandValue     = 1000
	thousandSeparator = ","
	yenSymbol         = "¥"
	displayDate       = "2006/01/02"
)

// FormatNumber renders an integer with thousands separators, e.g. 1,367.
func FormatNumber(value int64) string {
	var result string
	var isNegative bool

	if value < 0 {
		value *= -1
		isNegative = true
	}

	// for each 3 digits put a comma
	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousandSeparator, value%thousandValue, result)
		value /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-%d%s", value, result)
	}

	return fmt.Sprintf("%d%s", value, result)
}

// FormatYen renders an integer yen amount, e.g. ¥1,367.
func FormatYen(value int64) string {
	if value < 0 {
		return "-" + yenSymbol + FormatNumber(-value)
	}

	return yenSymbol + FormatNumber(value)
}

// FormatDate renders an order date as YYYY/MM/DD. Dates that do not parse are
// returned unchanged.
func FormatDate(value string) string {
	t, err := order.ParseDate(value)
	if err != nil {
		return value
	}

	return t.Format(displayDate)
}

func OrderLabel(id int64) string {
	return "order-" + strconv.FormatInt(id, 10)
}

// StatusClass returns the CSS class used to highlight a status badge, or an
// empty string for statuses without styling.
func StatusClass(status order.Status) string {
	switch status {
	case order.StatusCompleted:
		return "status-completed"
	case order.StatusPending:
		return "status-pending"
	case order.StatusCancelled:
		return "status-cancelled"
	default:
		return ""
	}
}
