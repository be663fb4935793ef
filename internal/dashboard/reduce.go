package dashboard

import (
	"fmt"

	"github.com/Takumouse/sales-dashboard2/internal/pagination"
)

// Reduce applies cmd to state. total is the size of the current working set
// and bounds page navigation. Invalid commands leave state unchanged.
func Reduce(state State, cmd Command, total int) (State, error) {
	switch c := cmd.(type) {
	case ApplyFilters:
		state.Filter = c.Criteria
		state.Page = 1
	case ResetFilters:
		state.Filter = DefaultState(state.PageSize).Filter
		state.Page = 1
	case SortBy:
		if !c.Field.Valid() {
			return state, fmt.Errorf("%w: unknown sort field %q", ErrInvalidCommand, c.Field)
		}
		state.Sort = state.Sort.Toggle(c.Field)
	case NextPage:
		if state.Page < pagination.PageCount(total, state.PageSize) {
			state.Page++
		}
	case PrevPage:
		if state.Page > 1 {
			state.Page--
		}
	case GoToPage:
		state.Page = pagination.Clamp(c.Page, total, state.PageSize)
	case SelectView:
		if !c.Mode.Valid() {
			return state, fmt.Errorf("%w: unknown view mode %q", ErrInvalidCommand, c.Mode)
		}
		state.Mode = c.Mode
	case ToggleTheme:
		state.Theme = state.Theme.Toggle()
	default:
		return state, fmt.Errorf("%w: %T", ErrInvalidCommand, cmd)
	}

	return state, nil
}
