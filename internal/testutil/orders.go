package testutil

import (
	"testing"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

// Orders returns a small dataset covering every status, several dates out of
// chronological order and repeated categories and regions.
func Orders() []order.Order {
	return []order.Order{
		{ID: 1, Date: "2025-05-03", Product: "Bread", Category: "Food", Region: "East", Amount: 100, Quantity: 2, Status: order.StatusCompleted},
		{ID: 2, Date: "2025-05-01", Product: "Hammer", Category: "Tools", Region: "West", Amount: 2500, Quantity: 1, Status: order.StatusPending},
		{ID: 3, Date: "2025-05-03", Product: "Cheese", Category: "Food", Region: "North", Amount: 800, Quantity: 3, Status: order.StatusCompleted},
		{ID: 4, Date: "2025-04-28", Product: "Laptop", Category: "Electronics", Region: "East", Amount: 98000, Quantity: 1, Status: order.StatusCancelled},
		{ID: 5, Date: "2025-05-10", Product: "Apple", Category: "Food", Region: "South", Amount: 300, Quantity: 6, Status: order.StatusCompleted},
		{ID: 6, Date: "2025-05-02", Product: "Wrench", Category: "Tools", Region: "Eastside", Amount: 1800, Quantity: 2, Status: order.Status("On hold")},
		{ID: 7, Date: "2025-05-10", Product: "Headphones", Category: "Electronics", Region: "West", Amount: 12000, Quantity: 1, Status: order.StatusPending},
	}
}

// Store builds an order.Store from Orders.
func Store(t *testing.T) *order.Store {
	t.Helper()

	s, err := order.NewStore(Orders())
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	return s
}

// IDs returns the ids of orders in sequence.
func IDs(orders []order.Order) []int64 {
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}
