package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/filter"
)

type ordersTable struct {
	table table.Model
}

func newOrdersTable(snapshot dashboard.Snapshot, width int) ordersTable {
	t := table.New(
		table.WithColumns(createOrdersColumns(width, snapshot.State.Sort)),
		table.WithRows(ordersToRows(snapshot.Rows)),
		table.WithFocused(true),
	)

	return ordersTable{
		table: t,
	}
}

func (o ordersTable) SetSnapshot(snapshot dashboard.Snapshot, width int) ordersTable {
	t := o.table
	t.SetColumns(createOrdersColumns(width, snapshot.State.Sort))
	t.SetRows(ordersToRows(snapshot.Rows))
	if t.Cursor() >= len(snapshot.Rows) {
		t.SetCursor(0)
	}

	return ordersTable{
		table: t,
	}
}

func (o ordersTable) Update(msg tea.Msg) (ordersTable, tea.Cmd) {
	var cmd tea.Cmd
	o.table, cmd = o.table.Update(msg)
	return o, cmd
}

func (o ordersTable) UpdateDimensions(width, height int) ordersTable {
	t := o.table
	t.SetWidth(width)
	t.SetHeight(height)

	return ordersTable{
		table: t,
	}
}

func (o ordersTable) View() string {
	return o.table.View()
}

var columnTitles = map[filter.SortField]string{
	filter.SortByID:       "Order",
	filter.SortByDate:     "Date",
	filter.SortByProduct:  "Product",
	filter.SortByCategory: "Category",
	filter.SortByRegion:   "Region",
	filter.SortByAmount:   "Amount",
	filter.SortByQuantity: "Qty",
	filter.SortByStatus:   "Status",
}

func createOrdersColumns(width int, sort filter.SortOptions) []table.Column {
	w := max(width/len(filter.SortFields)-2, 6)

	columns := make([]table.Column, len(filter.SortFields))
	for i, field := range filter.SortFields {
		title := columnTitles[field]
		if field == sort.Field {
			if sort.Direction == filter.SortAsc {
				title += " ↑"
			} else {
				title += " ↓"
			}
		}
		columns[i] = table.Column{Title: title, Width: w}
	}

	return columns
}
