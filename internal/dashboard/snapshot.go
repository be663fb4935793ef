package dashboard

import (
	"github.com/Takumouse/sales-dashboard2/internal/filter"
	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/pagination"
	"github.com/Takumouse/sales-dashboard2/internal/report"
)

// Snapshot is the fully computed view of a State, ready to render.
type Snapshot struct {
	State   State           `json:"state"`
	Rows    []order.Order   `json:"rows"`
	Page    pagination.Page `json:"page"`
	Summary report.Summary  `json:"summary"`

	// Exactly one of Breakdown or Trend is set, depending on State.Mode.
	Breakdown *report.Breakdown   `json:"breakdown,omitempty"`
	Trend     *report.TrendSeries `json:"trend,omitempty"`

	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`

	// Working is the filtered and sorted set every other field derives from.
	Working []order.Order `json:"-"`
}

// Compute runs the pipeline filter, sort, then aggregate and paginate.
func Compute(store *order.Store, state State) Snapshot {
	working := filter.Sort(filter.Apply(store.All(), state.Filter), state.Sort)

	snapshot := Snapshot{
		State:      state,
		Rows:       pagination.Paginate(working, state.PageSize, state.Page),
		Page:       pagination.NewPage(len(working), state.PageSize, state.Page),
		Summary:    report.Summarize(working),
		Categories: store.Categories(),
		Statuses:   store.Statuses(),
		Working:    working,
	}

	switch state.Mode {
	case ViewTrend:
		trend := report.Trend(working)
		snapshot.Trend = &trend
	case ViewRegion:
		snapshot.Breakdown = breakdown(working, report.GroupByRegion)
	default:
		snapshot.Breakdown = breakdown(working, report.GroupByCategory)
	}

	return snapshot
}

func breakdown(orders []order.Order, field report.GroupField) *report.Breakdown {
	// field is one of the package constants, GroupBy cannot fail
	b, _ := report.GroupBy(orders, field)
	return &b
}
