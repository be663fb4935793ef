package report

import (
	"github.com/Takumouse/sales-dashboard2/internal/order"
)

// Summary holds the headline figures of a working set.
type Summary struct {
	Count          int   `json:"count"`
	TotalAmount    int64 `json:"total_amount"`
	AverageAmount  int64 `json:"average_amount"`
	TotalQuantity  int64 `json:"total_quantity"`
	CompletedCount int   `json:"completed_count"`
}

// Summarize computes the summary figures. An empty set yields a zero average.
func Summarize(orders []order.Order) Summary {
	var summary Summary

	for _, o := range orders {
		summary.Count++
		summary.TotalAmount += o.Amount
		summary.TotalQuantity += o.Quantity

		if o.Status == order.StatusCompleted {
			summary.CompletedCount++
		}
	}

	summary.AverageAmount = roundedRatio(summary.TotalAmount, int64(summary.Count))

	return summary
}

// roundedRatio returns round(n/d) with halves rounded up, or 0 when d is 0.
// n and d are non-negative.
func roundedRatio(n, d int64) int64 {
	if d <= 0 {
		return 0
	}

	return n/d + (n%d*2+d)/(2*d)
}
