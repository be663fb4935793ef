package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/filter"
)

// FilterFlags select the initial dashboard view for the report and tui subcommands.
type FilterFlags struct {
	Search    string
	StartDate string
	EndDate   string
	Category  string
	Status    string
	Sort      string
	View      string
	Page      int
}

func (f *FilterFlags) SetFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Search, "search", "s", "", "case-insensitive product or region search")
	fs.StringVar(&f.StartDate, "start", "", "first date to include (YYYY-MM-DD)")
	fs.StringVar(&f.EndDate, "end", "", "last date to include (YYYY-MM-DD)")
	fs.StringVar(&f.Category, "category", "", "exact category")
	fs.StringVar(&f.Status, "status", "", "exact status")
	fs.StringVar(&f.Sort, "sort", filter.DefaultSortOptions().String(), "sort as field:direction")
	fs.StringVar(&f.View, "view", string(dashboard.ViewCategory), "chart view: category, region or trend")
	fs.IntVar(&f.Page, "page", 1, "page to show")
}

func (f *FilterFlags) Criteria() filter.Criteria {
	return filter.Criteria{
		SearchTerm: f.Search,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		Category:   f.Category,
		Status:     f.Status,
	}
}

// Commands returns the dashboard commands that take state to the view the
// flags describe.
func (f *FilterFlags) Commands(state dashboard.State) ([]dashboard.Command, error) {
	target, err := filter.ParseSort(f.Sort)
	if err != nil {
		return nil, err
	}

	mode := dashboard.ViewMode(f.View)
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown view %q", f.View)
	}

	commands := []dashboard.Command{}

	if criteria := f.Criteria(); criteria != state.Filter {
		commands = append(commands, dashboard.ApplyFilters{Criteria: criteria})
	}

	// sorting toggles, so at most two presses reach any field and direction
	sort := state.Sort
	for range 2 {
		if sort == target {
			break
		}
		sort = sort.Toggle(target.Field)
		commands = append(commands, dashboard.SortBy{Field: target.Field})
	}

	if mode != state.Mode {
		commands = append(commands, dashboard.SelectView{Mode: mode})
	}

	if f.Page != state.Page {
		commands = append(commands, dashboard.GoToPage{Page: f.Page})
	}

	return commands, nil
}

// Dispatch sends the commands built from the flags to controller.
func (f *FilterFlags) Dispatch(ctx context.Context, controller *dashboard.Controller) error {
	commands, err := f.Commands(controller.Snapshot().State)
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		if _, err = controller.Dispatch(ctx, cmd); err != nil {
			return fmt.Errorf("failed to apply %s: %w", cmd.Type(), err)
		}
	}

	return nil
}
