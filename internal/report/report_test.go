package report

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/testutil"
)

func workedExample() []order.Order {
	return []order.Order{
		{ID: 1, Date: "2025-01-01", Amount: 100, Quantity: 1, Category: "Food", Status: order.StatusCompleted},
		{ID: 2, Date: "2025-01-02", Amount: 200, Quantity: 2, Category: "Food", Status: order.StatusPending},
		{ID: 3, Date: "2025-01-03", Amount: 50, Quantity: 4, Category: "Tools", Status: order.StatusCompleted},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		orders   []order.Order
		expected Summary
	}{
		{
			name:   "worked example rounds the average",
			orders: workedExample(),
			expected: Summary{
				Count:          3,
				TotalAmount:    350,
				AverageAmount:  117,
				TotalQuantity:  7,
				CompletedCount: 2,
			},
		},
		{
			name:   "sample dataset",
			orders: testutil.Orders(),
			expected: Summary{
				Count:          7,
				TotalAmount:    115500,
				AverageAmount:  16500,
				TotalQuantity:  16,
				CompletedCount: 3,
			},
		},
		{
			name:     "empty set has zero average",
			orders:   []order.Order{},
			expected: Summary{},
		},
		{
			name:     "nil set",
			orders:   nil,
			expected: Summary{},
		},
		{
			name: "halves round up",
			orders: []order.Order{
				{Amount: 1}, {Amount: 2},
			},
			expected: Summary{Count: 2, TotalAmount: 3, AverageAmount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Summarize(tt.orders)); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundedRatio(t *testing.T) {
	tests := []struct {
		n, d     int64
		expected int64
	}{
		{n: 350, d: 3, expected: 117},
		{n: 5, d: 2, expected: 3},
		{n: 7, d: 4, expected: 2},
		{n: 1, d: 3, expected: 0},
		{n: 0, d: 4, expected: 0},
		{n: 10, d: 0, expected: 0},
		// beyond float64 precision
		{n: 1<<53 + 1, d: 1, expected: 1<<53 + 1},
		{n: 1<<62 + 3, d: 2, expected: 1<<61 + 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.d), func(t *testing.T) {
			if got := roundedRatio(tt.n, tt.d); got != tt.expected {
				t.Errorf("roundedRatio(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.expected)
			}
		})
	}
}

func TestSummarizeLargeAmounts(t *testing.T) {
	orders := []order.Order{
		{ID: 1, Date: "2025-01-01", Amount: 1<<53 + 1, Status: order.StatusPending},
		{ID: 2, Date: "2025-01-02", Amount: 1<<53 + 2, Status: order.StatusPending},
	}

	// (2^54 + 3) / 2 rounds half up to 2^53 + 2
	if got := Summarize(orders).AverageAmount; got != 1<<53+2 {
		t.Errorf("AverageAmount = %d, want %d", got, int64(1<<53+2))
	}
}

func TestGroupByWorkedExample(t *testing.T) {
	breakdown, err := GroupBy(workedExample(), GroupByCategory)
	if err != nil {
		t.Fatalf("GroupBy() error = %v", err)
	}

	expected := Breakdown{
		Field: GroupByCategory,
		Total: 350,
		Groups: []Group{
			{Label: "Food", Amount: 300, Color: "#0088FE", Share: 86},
			{Label: "Tools", Amount: 50, Color: "#8884D8", Share: 14},
		},
	}

	if diff := cmp.Diff(expected, breakdown); diff != "" {
		t.Errorf("GroupBy() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByKeepsFirstSeenOrder(t *testing.T) {
	tests := []struct {
		field          GroupField
		expectedLabels []string
		expectedAmount []int64
	}{
		{
			field:          GroupByCategory,
			expectedLabels: []string{"Food", "Tools", "Electronics"},
			expectedAmount: []int64{1200, 4300, 110000},
		},
		{
			field:          GroupByRegion,
			expectedLabels: []string{"East", "West", "North", "South", "Eastside"},
			expectedAmount: []int64{98100, 14500, 800, 300, 1800},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			breakdown, err := GroupBy(testutil.Orders(), tt.field)
			if err != nil {
				t.Fatalf("GroupBy() error = %v", err)
			}

			if diff := cmp.Diff(tt.expectedLabels, breakdown.Labels()); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.expectedAmount, breakdown.Amounts()); diff != "" {
				t.Errorf("amounts mismatch (-want +got):\n%s", diff)
			}

			var sum int64
			for _, g := range breakdown.Groups {
				sum += g.Amount
			}
			if total := Summarize(testutil.Orders()).TotalAmount; sum != total || breakdown.Total != total {
				t.Errorf("group sum = %d, breakdown total = %d, want %d", sum, breakdown.Total, total)
			}
		})
	}
}

func TestGroupByPaletteWraps(t *testing.T) {
	tests := []struct {
		field   GroupField
		palette []string
	}{
		{field: GroupByCategory, palette: CategoryPalette},
		{field: GroupByRegion, palette: RegionPalette},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			orders := []order.Order{}
			for i := range len(tt.palette) + 3 {
				value := fmt.Sprintf("group-%d", i)
				orders = append(orders, order.Order{ID: int64(i), Category: value, Region: value, Amount: 10})
			}

			breakdown, err := GroupBy(orders, tt.field)
			if err != nil {
				t.Fatalf("GroupBy() error = %v", err)
			}

			for i, g := range breakdown.Groups {
				if want := tt.palette[i%len(tt.palette)]; g.Color != want {
					t.Errorf("group %d color = %s, want %s", i, g.Color, want)
				}
			}
		})
	}

	if len(CategoryPalette) != 5 || len(RegionPalette) != 9 {
		t.Errorf("palette sizes = %d/%d, want 5/9", len(CategoryPalette), len(RegionPalette))
	}
}

func TestGroupByEmpty(t *testing.T) {
	breakdown, err := GroupBy(nil, GroupByRegion)
	if err != nil {
		t.Fatalf("GroupBy() error = %v", err)
	}

	if breakdown.Total != 0 || len(breakdown.Groups) != 0 {
		t.Errorf("expected empty breakdown, got %+v", breakdown)
	}
}

func TestGroupByZeroTotalShare(t *testing.T) {
	breakdown, err := GroupBy([]order.Order{{Category: "Free", Amount: 0}}, GroupByCategory)
	if err != nil {
		t.Fatalf("GroupBy() error = %v", err)
	}

	if breakdown.Groups[0].Share != 0 {
		t.Errorf("share = %d, want 0", breakdown.Groups[0].Share)
	}
}

func TestGroupByInvalidField(t *testing.T) {
	if _, err := GroupBy(testutil.Orders(), GroupField("product")); err == nil {
		t.Error("expected error for invalid group field")
	}
}
