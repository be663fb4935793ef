package report

import (
	"fmt"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

// GroupField is a categorical order field the breakdown can group on.
type GroupField string

const (
	GroupByCategory GroupField = "category"
	GroupByRegion   GroupField = "region"
)

var (
	CategoryPalette = []string{
		"#0088FE",
		"#8884D8",
		"#FF8042",
		"#FFBB28",
		"#00C49F",
	}

	RegionPalette = []string{
		"#2196F3",
		"#673AB7",
		"#FF5722",
		"#FFC107",
		"#009688",
		"#E91E63",
		"#3F51B5",
		"#4CAF50",
		"#9C27B0",
	}
)

const percentageOfTotal = 100

// Group is the summed amount of every order sharing one field value.
type Group struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Color  string `json:"color"`
	Share  int64  `json:"share"` // rounded percentage of the breakdown total
}

// Breakdown is a group-by-sum over one field. Groups keep the order in which
// their value first appeared in the input.
type Breakdown struct {
	Field  GroupField `json:"field"`
	Total  int64      `json:"total"`
	Groups []Group    `json:"groups"`
}

// Labels returns the group labels in breakdown order.
func (b Breakdown) Labels() []string {
	labels := make([]string, len(b.Groups))
	for i, g := range b.Groups {
		labels[i] = g.Label
	}
	return labels
}

// Amounts returns the group amounts in breakdown order.
func (b Breakdown) Amounts() []int64 {
	amounts := make([]int64, len(b.Groups))
	for i, g := range b.Groups {
		amounts[i] = g.Amount
	}
	return amounts
}

func (f GroupField) Valid() bool {
	return f == GroupByCategory || f == GroupByRegion
}

// Palette returns the colors cycled through for the field's groups.
func (f GroupField) Palette() []string {
	if f == GroupByRegion {
		return RegionPalette
	}
	return CategoryPalette
}

func (f GroupField) value(o order.Order) string {
	if f == GroupByRegion {
		return o.Region
	}
	return o.Category
}

// GroupBy sums order amounts per distinct value of field.
func GroupBy(orders []order.Order, field GroupField) (Breakdown, error) {
	if !field.Valid() {
		return Breakdown{}, fmt.Errorf("invalid group field: %s", field)
	}

	breakdown := Breakdown{
		Field:  field,
		Groups: []Group{},
	}
	index := map[string]int{}

	for _, o := range orders {
		key := field.value(o)

		i, ok := index[key]
		if !ok {
			i = len(breakdown.Groups)
			index[key] = i
			breakdown.Groups = append(breakdown.Groups, Group{Label: key})
		}

		breakdown.Groups[i].Amount += o.Amount
		breakdown.Total += o.Amount
	}

	palette := field.Palette()
	for i := range breakdown.Groups {
		breakdown.Groups[i].Color = palette[i%len(palette)]
		breakdown.Groups[i].Share = roundedRatio(breakdown.Groups[i].Amount*percentageOfTotal, breakdown.Total)
	}

	return breakdown, nil
}
