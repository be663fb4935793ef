package theme

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Takumouse/sales-dashboard2/internal/cli"
	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
)

type themeCommand struct {
	toggle bool
}

func NewCommand() cli.Command {
	return &themeCommand{}
}

func (c *themeCommand) Description() string {
	return "Shows the saved dashboard theme, or switches it with --toggle"
}

func (c *themeCommand) SetFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.toggle, "toggle", false, "switch between light and dark and save the choice")
}

func (c *themeCommand) Run(ctx context.Context, app *cli.App) error {
	snapshot := app.Controller.Snapshot()

	if c.toggle {
		var err error
		snapshot, err = app.Controller.Dispatch(ctx, dashboard.ToggleTheme{})
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(app.Out, snapshot.State.Theme)
	return err
}
