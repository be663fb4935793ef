package pagination

const (
	// DefaultPageSize is the number of rows on a dashboard page.
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// PageCount returns ceil(total/pageSize), never less than 1.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total-1)/pageSize + 1
}

// Paginate returns the items of the 1-based page. Pages outside the valid
// range yield an empty slice.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 || len(items) == 0 || page > PageCount(len(items), pageSize) {
		return []T{}
	}

	// page is now bounded by the page count, the product cannot overflow
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(items)-start)

	return items[start:end:end]
}

// Page describes the current page for navigation controls.
type Page struct {
	Current int  `json:"current"`
	Count   int  `json:"count"`
	Size    int  `json:"size"`
	Total   int  `json:"total"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// NewPage builds the navigation metadata for a working set of total items.
func NewPage(total, pageSize, current int) Page {
	count := PageCount(total, pageSize)

	return Page{
		Current: current,
		Count:   count,
		Size:    pageSize,
		Total:   total,
		HasPrev: current > 1,
		HasNext: current < count,
	}
}

// Clamp returns page limited to [1, PageCount(total, pageSize)].
func Clamp(page, total, pageSize int) int {
	return max(1, min(page, PageCount(total, pageSize)))
}
