package filter

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/testutil"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expected []int64
	}{
		{
			name:     "empty criteria returns everything in order",
			criteria: Criteria{},
			expected: []int64{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:     "search matches product case-insensitively",
			criteria: Criteria{SearchTerm: "BREAD"},
			expected: []int64{1},
		},
		{
			name:     "search matches region substring",
			criteria: Criteria{SearchTerm: "east"},
			expected: []int64{1, 4, 6},
		},
		{
			name:     "date range is inclusive on both ends",
			criteria: Criteria{StartDate: "2025-05-01", EndDate: "2025-05-03"},
			expected: []int64{1, 2, 3, 6},
		},
		{
			name:     "start date only",
			criteria: Criteria{StartDate: "2025-05-10"},
			expected: []int64{5, 7},
		},
		{
			name:     "category exact match",
			criteria: Criteria{Category: "Tools"},
			expected: []int64{2, 6},
		},
		{
			name:     "category match is case sensitive",
			criteria: Criteria{Category: "tools"},
			expected: []int64{},
		},
		{
			name:     "status exact match",
			criteria: Criteria{Status: string(order.StatusCompleted)},
			expected: []int64{1, 3, 5},
		},
		{
			name:     "unknown status can be filtered",
			criteria: Criteria{Status: "On hold"},
			expected: []int64{6},
		},
		{
			name:     "criteria are combined with AND",
			criteria: Criteria{SearchTerm: "e", Category: "Food", Status: string(order.StatusCompleted), EndDate: "2025-05-05"},
			expected: []int64{1, 3},
		},
		{
			name:     "malformed date bound yields no matches",
			criteria: Criteria{StartDate: "2025/05/01"},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(testutil.Orders(), tt.criteria)
			if diff := cmp.Diff(tt.expected, testutil.IDs(result)); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := []Criteria{
		{},
		{SearchTerm: "e"},
		{Category: "Food", StartDate: "2025-05-02"},
		{Status: string(order.StatusPending), EndDate: "2025-05-31"},
	}

	for _, c := range criteria {
		once := Apply(testutil.Orders(), c)
		twice := Apply(once, c)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Apply(Apply(x)) differs for %+v (-once +twice):\n%s", c, diff)
		}
	}
}

func TestApplyPartitionsRecords(t *testing.T) {
	c := Criteria{SearchTerm: "es", StartDate: "2025-05-01", Status: string(order.StatusCompleted)}
	orders := testutil.Orders()

	kept := map[int64]bool{}
	for _, o := range Apply(orders, c) {
		kept[o.ID] = true
		if !strings.Contains(strings.ToLower(o.Product+"|"+o.Region), "es") {
			t.Errorf("order %d kept without search match", o.ID)
		}
		if o.Date < c.StartDate || o.Status != order.StatusCompleted {
			t.Errorf("order %d kept violating date or status", o.ID)
		}
	}

	for _, o := range orders {
		if !kept[o.ID] && c.Matches(o) {
			t.Errorf("order %d excluded although every criterion holds", o.ID)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	orders := testutil.Orders()
	before := testutil.Orders()

	_ = Apply(orders, Criteria{Category: "Food"})

	if diff := cmp.Diff(before, orders); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestCriteriaIsEmpty(t *testing.T) {
	if !(Criteria{}).IsEmpty() {
		t.Error("zero Criteria should be empty")
	}
	if (Criteria{Status: "Pending"}).IsEmpty() {
		t.Error("Criteria with status should not be empty")
	}
}

func TestParseCriteria(t *testing.T) {
	params := url.Values{}
	params.Set("search", "East ")
	params.Set("start_date", " 2025-05-01 ")
	params.Set("category", "Food")

	expected := Criteria{SearchTerm: "East ", StartDate: "2025-05-01", Category: "Food"}
	got := ParseCriteria(params)

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseCriteria() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(expected, ParseCriteria(got.Values())); diff != "" {
		t.Errorf("Values() round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	east := order.Order{ID: 1, Date: "2025-05-01", Product: "Bread", Region: "East"}
	eastSide := order.Order{ID: 2, Date: "2025-05-01", Product: "Apple", Region: "Fresh East side"}

	criteria := ParseCriteria(url.Values{"search": {"east "}})

	if criteria.Matches(east) {
		t.Error("expected \"east \" not to match region \"East\"")
	}
	if !criteria.Matches(eastSide) {
		t.Error("expected \"east \" to match region \"Fresh East side\"")
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedSort SortOptions
		wantErr      bool
	}{
		{
			name:         "default sort",
			query:        "category=Food",
			expectedSort: DefaultSortOptions(),
		},
		{
			name:         "explicit sort",
			query:        "sort=amount:asc",
			expectedSort: SortOptions{Field: SortByAmount, Direction: SortAsc},
		},
		{
			name:    "invalid sort",
			query:   "sort=price:asc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("failed to parse query: %v", err)
			}

			_, sort, err := ParseQuery(params)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if sort != tt.expectedSort {
				t.Errorf("expected sort %v, got %v", tt.expectedSort, sort)
			}
		})
	}
}
