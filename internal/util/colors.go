package util

import (
	"github.com/fatih/color"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"underline": color.Underline,
	"bold":      color.Bold,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
}

var statusColors = map[order.Status]string{
	order.StatusCompleted: "green",
	order.StatusPending:   "yellow",
	order.StatusCancelled: "red",
}

func ColorOutput(text string, colorOptions ...string) string {
	attributes := []color.Attribute{}
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}

// ColorStatus renders a status in its terminal color. Unknown statuses are
// returned as is.
func ColorStatus(status order.Status) string {
	option, ok := statusColors[status]
	if !ok {
		return string(status)
	}

	return ColorOutput(string(status), option)
}
