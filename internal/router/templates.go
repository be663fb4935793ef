package router

import (
	"embed"
	"html/template"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/filter"
	"github.com/Takumouse/sales-dashboard2/internal/util"
)

//go:embed templates
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"formatYen":   util.FormatYen,
	"formatDate":  util.FormatDate,
	"orderLabel":  util.OrderLabel,
	"statusClass": util.StatusClass,
	"sortIcon":    sortIcon,
}

var indexTempl = template.Must(template.New("index.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/index.html"))

// sortIcon marks the sorted column with its direction.
func sortIcon(opts filter.SortOptions, field string) string {
	if string(opts.Field) != field {
		return ""
	}
	if opts.Direction == filter.SortAsc {
		return "↑"
	}
	return "↓"
}

type column struct {
	Field string
	Title string
}

var tableColumns = []column{
	{Field: string(filter.SortByID), Title: "Order"},
	{Field: string(filter.SortByDate), Title: "Date"},
	{Field: string(filter.SortByProduct), Title: "Product"},
	{Field: string(filter.SortByCategory), Title: "Category"},
	{Field: string(filter.SortByRegion), Title: "Region"},
	{Field: string(filter.SortByAmount), Title: "Amount"},
	{Field: string(filter.SortByQuantity), Title: "Quantity"},
	{Field: string(filter.SortByStatus), Title: "Status"},
}

type homeData struct {
	dashboard.Snapshot
	Columns     []column
	ViewModes   []dashboard.ViewMode
	ExportQuery template.URL
}

func newHomeData(snapshot dashboard.Snapshot) homeData {
	query := snapshot.State.Filter.Values()
	query.Set("sort", snapshot.State.Sort.String())

	return homeData{
		Snapshot:  snapshot,
		Columns:   tableColumns,
		ViewModes: dashboard.ViewModes,
		// Encode escapes every value
		ExportQuery: template.URL(query.Encode()),
	}
}
