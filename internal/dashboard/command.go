package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Takumouse/sales-dashboard2/internal/filter"
)

var ErrInvalidCommand = errors.New("invalid command")

// Command is a user intent sent by a presentation adapter.
type Command interface {
	Type() string
}

type ApplyFilters struct {
	Criteria filter.Criteria `json:"criteria"`
}

type ResetFilters struct{}

type SortBy struct {
	Field filter.SortField `json:"field"`
}

type NextPage struct{}

type PrevPage struct{}

type GoToPage struct {
	Page int `json:"page"`
}

type SelectView struct {
	Mode ViewMode `json:"mode"`
}

type ToggleTheme struct{}

func (ApplyFilters) Type() string { return "apply_filters" }
func (ResetFilters) Type() string { return "reset_filters" }
func (SortBy) Type() string { return "sort_by" }
func (NextPage) Type() string { return "next_page" }
func (PrevPage) Type() string { return "prev_page" }
func (GoToPage) Type() string { return "go_to_page" }
func (SelectView) Type() string { return "select_view" }
func (ToggleTheme) Type() string { return "toggle_theme" }

var commandFactories = map[string]func() Command{
	ApplyFilters{}.Type(): func() Command { return &ApplyFilters{} },
	ResetFilters{}.Type(): func() Command { return &ResetFilters{} },
	SortBy{}.Type():       func() Command { return &SortBy{} },
	NextPage{}.Type():     func() Command { return &NextPage{} },
	PrevPage{}.Type():     func() Command { return &PrevPage{} },
	GoToPage{}.Type():     func() Command { return &GoToPage{} },
	SelectView{}.Type():   func() Command { return &SelectView{} },
	ToggleTheme{}.Type():  func() Command { return &ToggleTheme{} },
}

// DecodeCommand reads a JSON command of the form {"type": "sort_by", "field": "amount"}.
// ApplyFilters takes its criteria inline: {"type": "apply_filters", "category": "Food"}.
func DecodeCommand(data []byte) (Command, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}

	factory, ok := commandFactories[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidCommand, envelope.Type)
	}

	cmd := factory()

	var target any = cmd
	if apply, isApply := cmd.(*ApplyFilters); isApply {
		target = &apply.Criteria
	}

	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}

	return deref(cmd), nil
}

func deref(cmd Command) Command {
	switch c := cmd.(type) {
	case *ApplyFilters:
		return *c
	case *ResetFilters:
		return *c
	case *SortBy:
		return *c
	case *NextPage:
		return *c
	case *PrevPage:
		return *c
	case *GoToPage:
		return *c
	case *SelectView:
		return *c
	case *ToggleTheme:
		return *c
	default:
		return cmd
	}
}

// ParseCommand builds a command from form values, as posted by the HTML page.
func ParseCommand(values url.Values) (Command, error) {
	commandType := values.Get("type")

	switch commandType {
	case ApplyFilters{}.Type():
		return ApplyFilters{Criteria: filter.ParseCriteria(values)}, nil
	case SortBy{}.Type():
		return SortBy{Field: filter.SortField(values.Get("field"))}, nil
	case GoToPage{}.Type():
		page, err := strconv.Atoi(values.Get("page"))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid page: %w", ErrInvalidCommand, err)
		}
		return GoToPage{Page: page}, nil
	case SelectView{}.Type():
		return SelectView{Mode: ViewMode(values.Get("mode"))}, nil
	}

	factory, ok := commandFactories[commandType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidCommand, commandType)
	}

	return deref(factory()), nil
}
