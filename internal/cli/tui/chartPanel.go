package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/util"
)

type chartPanel struct {
	table    table.Model
	snapshot dashboard.Snapshot
}

func newChartPanel(snapshot dashboard.Snapshot, width int) chartPanel {
	t := table.New(
		table.WithColumns(createChartColumns(width, snapshot.State.Mode)),
		table.WithRows(chartRows(snapshot)),
	)

	return chartPanel{
		table:    t,
		snapshot: snapshot,
	}
}

func (c chartPanel) UpdateDimensions(width, height int) chartPanel {
	t := c.table
	t.SetColumns(createChartColumns(width, c.snapshot.State.Mode))
	t.SetWidth(width)
	t.SetHeight(height)

	return chartPanel{
		table:    t,
		snapshot: c.snapshot,
	}
}

func (c chartPanel) View() string {
	summary := c.snapshot.Summary

	l := list.New(
		"Total sales: "+util.FormatYen(summary.TotalAmount),
		"Average order: "+util.FormatYen(summary.AverageAmount),
		"Units sold: "+util.FormatNumber(summary.TotalQuantity),
		"Completed orders: "+util.FormatNumber(int64(summary.CompletedCount)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, c.table.View(), l.String())
}

func createChartColumns(width int, mode dashboard.ViewMode) []table.Column {
	w := max(width/3-2, 6)

	label := "Category"
	switch mode {
	case dashboard.ViewRegion:
		label = "Region"
	case dashboard.ViewTrend:
		label = "Date"
	}

	return []table.Column{
		{Title: label, Width: w},
		{Title: "Sales", Width: w},
		{Title: "Share", Width: w / 2},
	}
}
