package report

import (
	"slices"
	"strings"
	"time"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

const labelLayout = "2006/01/02"

// Point is the summed amount of a single calendar day.
type Point struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// TrendSeries is the per-day sales series, always in chronological order.
type TrendSeries struct {
	Points []Point `json:"points"`
}

// Labels returns the display labels of every point.
func (s TrendSeries) Labels() []string {
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Label
	}
	return labels
}

// Amounts returns the amount of every point.
func (s TrendSeries) Amounts() []int64 {
	amounts := make([]int64, len(s.Points))
	for i, p := range s.Points {
		amounts[i] = p.Amount
	}
	return amounts
}

type dayTotal struct {
	point  Point
	parsed time.Time
	valid  bool
}

// Trend sums amounts per calendar day. The input order is ignored: points come
// out sorted by ascending date, with unparseable dates after all valid ones.
func Trend(orders []order.Order) TrendSeries {
	days := []*dayTotal{}
	index := map[string]*dayTotal{}

	for _, o := range orders {
		key := order.NormalizeDate(o.Date)

		day, ok := index[key]
		if !ok {
			day = &dayTotal{point: Point{Date: key, Label: key}}
			if t, err := order.ParseDate(key); err == nil {
				day.parsed = t
				day.valid = true
				day.point.Label = t.Format(labelLayout)
			}
			index[key] = day
			days = append(days, day)
		}

		day.point.Amount += o.Amount
	}

	slices.SortStableFunc(days, func(a, b *dayTotal) int {
		switch {
		case a.valid && b.valid:
			return a.parsed.Compare(b.parsed)
		case a.valid:
			return -1
		case b.valid:
			return 1
		default:
			return strings.Compare(a.point.Date, b.point.Date)
		}
	})

	series := TrendSeries{Points: make([]Point, len(days))}
	for i, day := range days {
		series.Points[i] = day.point
	}

	return series
}
