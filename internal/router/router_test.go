package router

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/filter"
	"github.com/Takumouse/sales-dashboard2/internal/testutil"
)

func newTestHandler(t *testing.T) (http.Handler, *dashboard.Controller) {
	t.Helper()

	logger := testutil.TestLogger(t)
	controller := dashboard.New(context.Background(), testutil.Store(t), nil, logger, 3)

	return New(controller, logger, nil), controller
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	if err := json.NewDecoder(rr.Body).Decode(&value); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return value
}

func TestNew(t *testing.T) {
	handler, _ := newTestHandler(t)
	if handler == nil {
		t.Fatal("Expected non-nil handler")
	}
}

func TestHome(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	body := rr.Body.String()
	expected := []string{
		"¥115,500",
		"¥16,500",
		"order-7",
		"2025/05/10",
		`class="status-tag status-pending"`,
		`<span id="page-info">1 / 3</span>`,
		`<option value="Electronics">`,
		"sort=id%3Adesc",
	}
	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("Expected body to contain %q", s)
		}
	}

	if rr.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("Expected X-Frame-Options header")
	}
}

func TestHomeUnknownPath(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestDashboardAPI(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	snapshot := decodeJSON[dashboard.Snapshot](t, rr)
	if diff := cmp.Diff([]int64{7, 6, 5}, testutil.IDs(snapshot.Rows)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if snapshot.Summary.TotalAmount != 115500 || snapshot.Page.Count != 3 {
		t.Errorf("unexpected snapshot: %+v %+v", snapshot.Summary, snapshot.Page)
	}
	if snapshot.Breakdown == nil || len(snapshot.Breakdown.Groups) != 3 {
		t.Errorf("expected category breakdown, got %+v", snapshot.Breakdown)
	}
}

func TestCommandsJSON(t *testing.T) {
	handler, controller := newTestHandler(t)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/commands", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	rr := post(`{"type": "apply_filters", "category": "Food"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body)
	}
	snapshot := decodeJSON[dashboard.Snapshot](t, rr)
	if diff := cmp.Diff([]int64{5, 3, 1}, testutil.IDs(snapshot.Rows)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	rr = post(`{"type": "select_view", "mode": "trend"}`)
	snapshot = decodeJSON[dashboard.Snapshot](t, rr)
	if snapshot.Trend == nil || snapshot.Breakdown != nil {
		t.Errorf("expected trend only, got %+v / %+v", snapshot.Breakdown, snapshot.Trend)
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown type", body: `{"type": "explode"}`},
		{name: "invalid json", body: `{`},
		{name: "invalid sort field", body: `{"type": "sort_by", "field": "price"}`},
		{name: "invalid view", body: `{"type": "select_view", "mode": "pie"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
			if resp := decodeJSON[errorResponse](t, rr); resp.Error == "" {
				t.Error("Expected error message")
			}
		})
	}

	if mode := controller.Snapshot().State.Mode; mode != dashboard.ViewTrend {
		t.Errorf("rejected commands changed state, mode = %s", mode)
	}
}

func TestCommandsForm(t *testing.T) {
	handler, controller := newTestHandler(t)

	form := url.Values{"type": {"sort_by"}, "field": {"amount"}}
	req := httptest.NewRequest(http.MethodPost, "/api/commands", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Sec-Fetch-Site", "same-origin")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", rr.Code)
	}
	if location := rr.Header().Get("Location"); location != "/" {
		t.Errorf("Expected redirect to /, got %q", location)
	}

	expected := filter.SortOptions{Field: filter.SortByAmount, Direction: filter.SortAsc}
	if sort := controller.Snapshot().State.Sort; sort != expected {
		t.Errorf("sort = %v, want %v", sort, expected)
	}
}

func TestCommandsRejectCrossSite(t *testing.T) {
	handler, controller := newTestHandler(t)

	form := url.Values{"type": {"toggle_theme"}}
	req := httptest.NewRequest(http.MethodPost, "/api/commands", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Sec-Fetch-Site", "cross-site")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("Expected status 403, got %d", rr.Code)
	}
	if theme := controller.Snapshot().State.Theme; theme != dashboard.ThemeLight {
		t.Errorf("theme changed to %s", theme)
	}
}

func TestOrdersAPI(t *testing.T) {
	handler, controller := newTestHandler(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedIDs    []int64
		expectedCount  int
	}{
		{
			name:           "defaults",
			query:          "",
			expectedStatus: http.StatusOK,
			expectedIDs:    []int64{7, 6, 5},
			expectedCount:  3,
		},
		{
			name:           "filter and sort",
			query:          "category=Food&sort=amount:desc",
			expectedStatus: http.StatusOK,
			expectedIDs:    []int64{3, 5, 1},
			expectedCount:  1,
		},
		{
			name:           "second page",
			query:          "sort=date:asc&page=2&page_size=2",
			expectedStatus: http.StatusOK,
			expectedIDs:    []int64{6, 1},
			expectedCount:  4,
		},
		{
			name:           "page out of range",
			query:          "page=9",
			expectedStatus: http.StatusOK,
			expectedIDs:    []int64{},
			expectedCount:  3,
		},
		{
			name:           "largest page",
			query:          "page=9223372036854775807&page_size=10",
			expectedStatus: http.StatusOK,
			expectedIDs:    []int64{},
			expectedCount:  1,
		},
		{
			name:           "invalid sort",
			query:          "sort=price:asc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid page",
			query:          "page=two",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders?"+tt.query, nil))

			if rr.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			resp := decodeJSON[ordersResponse](t, rr)
			if diff := cmp.Diff(tt.expectedIDs, testutil.IDs(resp.Rows)); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
			if resp.Page.Count != tt.expectedCount {
				t.Errorf("page count = %d, want %d", resp.Page.Count, tt.expectedCount)
			}
		})
	}

	// stateless queries leave the dashboard untouched
	if diff := cmp.Diff(dashboard.DefaultState(3), controller.Snapshot().State); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
}

func TestOrdersCSV(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders.csv?status=Completed&sort=id:asc", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}

	records, err := csv.NewReader(rr.Body).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	var ids []string
	for _, record := range records[1:] {
		ids = append(ids, record[0])
	}
	if diff := cmp.Diff([]string{"1", "3", "5"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders.csv?sort=bad", nil))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
