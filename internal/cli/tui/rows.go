package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/util"
)

func orderToRow(o order.Order) table.Row {
	return table.Row{
		util.OrderLabel(o.ID),
		util.FormatDate(o.Date),
		o.Product,
		o.Category,
		o.Region,
		util.FormatYen(o.Amount),
		strconv.FormatInt(o.Quantity, 10),
		util.ColorStatus(o.Status),
	}
}

func ordersToRows(orders []order.Order) []table.Row {
	rows := make([]table.Row, len(orders))
	for i, o := range orders {
		rows[i] = orderToRow(o)
	}
	return rows
}

// chartRows renders whichever aggregate the snapshot carries.
func chartRows(snapshot dashboard.Snapshot) []table.Row {
	rows := []table.Row{}

	if b := snapshot.Breakdown; b != nil {
		for _, g := range b.Groups {
			rows = append(rows, table.Row{
				g.Label,
				util.FormatYen(g.Amount),
				fmt.Sprintf("%d%%", g.Share),
			})
		}
	}

	if t := snapshot.Trend; t != nil {
		for _, p := range t.Points {
			rows = append(rows, table.Row{
				p.Label,
				util.FormatYen(p.Amount),
				"",
			})
		}
	}

	return rows
}
