package dashboard

import (
	"github.com/Takumouse/sales-dashboard2/internal/filter"
	"github.com/Takumouse/sales-dashboard2/internal/pagination"
)

// ViewMode selects which aggregate the chart area shows.
type ViewMode string

const (
	ViewCategory ViewMode = "category"
	ViewRegion   ViewMode = "region"
	ViewTrend    ViewMode = "trend"
)

var ViewModes = []ViewMode{ViewCategory, ViewRegion, ViewTrend}

func (m ViewMode) Valid() bool {
	switch m {
	case ViewCategory, ViewRegion, ViewTrend:
		return true
	default:
		return false
	}
}

// Next cycles through the view modes in display order.
func (m ViewMode) Next() ViewMode {
	switch m {
	case ViewCategory:
		return ViewRegion
	case ViewRegion:
		return ViewTrend
	default:
		return ViewCategory
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme maps a stored preference to a Theme. Anything but "dark" is light.
func ParseTheme(value string) Theme {
	if Theme(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// State is everything the user can change on the dashboard.
type State struct {
	Filter   filter.Criteria    `json:"filter"`
	Sort     filter.SortOptions `json:"sort"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Mode     ViewMode           `json:"mode"`
	Theme    Theme              `json:"theme"`
}

func DefaultState(pageSize int) State {
	return State{
		Sort: filter.DefaultSortOptions(),
		Page: 1,
		PageSize: pagination.ClampPageSize(pageSize, pagination.PageSizeConfig{
			Default: pagination.DefaultPageSize,
			Max:     pagination.MaxPageSize,
		}),
		Mode:  ViewCategory,
		Theme: ThemeLight,
	}
}
