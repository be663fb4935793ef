package filter

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseCriteria reads filter criteria from URL query parameters. Date bounds
// are trimmed, the search term is kept as typed; missing parameters stay empty.
func ParseCriteria(params url.Values) Criteria {
	return Criteria{
		SearchTerm: params.Get("search"),
		StartDate:  strings.TrimSpace(params.Get("start_date")),
		EndDate:    strings.TrimSpace(params.Get("end_date")),
		Category:   params.Get("category"),
		Status:     params.Get("status"),
	}
}

// ParseQuery parses URL query parameters into criteria and sort options.
// A missing sort parameter yields the default sort.
func ParseQuery(params url.Values) (Criteria, SortOptions, error) {
	criteria := ParseCriteria(params)
	sort := DefaultSortOptions()

	if sortStr := params.Get("sort"); sortStr != "" {
		parsed, err := ParseSort(sortStr)
		if err != nil {
			return Criteria{}, SortOptions{}, fmt.Errorf("invalid sort: %w", err)
		}
		sort = parsed
	}

	return criteria, sort, nil
}

// Values encodes c back into URL query parameters, omitting empty fields.
func (c Criteria) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	set("search", c.SearchTerm)
	set("start_date", c.StartDate)
	set("end_date", c.EndDate)
	set("category", c.Category)
	set("status", c.Status)

	return values
}
