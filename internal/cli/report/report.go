package report

import (
	"context"
	"embed"
	"io"
	"path"
	"text/template"

	"github.com/spf13/pflag"

	"github.com/Takumouse/sales-dashboard2/internal/cli"
	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/dataset"
	"github.com/Takumouse/sales-dashboard2/internal/export"
	"github.com/Takumouse/sales-dashboard2/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
	filters cli.FilterFlags
	verbose bool
	csv     bool
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Prints the dashboard summary, chart data and orders for the selected filters"
}

func (c *reportCommand) SetFlags(fs *pflag.FlagSet) {
	c.filters.SetFlags(fs)
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "list every matching order instead of one page")
	fs.BoolVar(&c.csv, "csv", false, "write the matching orders as CSV")
}

type reportData struct {
	Snapshot dashboard.Snapshot
	Origin   dataset.Origin
	Verbose  bool
}

func (c *reportCommand) Run(ctx context.Context, app *cli.App) error {
	if err := c.filters.Dispatch(ctx, app.Controller); err != nil {
		return err
	}

	snapshot := app.Controller.Snapshot()

	if c.csv {
		return export.CSV(app.Out, snapshot.Working)
	}

	return renderTemplate(app.Out, "report.tmpl", reportData{
		Snapshot: snapshot,
		Origin:   app.Origin,
		Verbose:  c.verbose,
	})
}

var templateFuncs = template.FuncMap{
	"formatYen":   util.FormatYen,
	"formatDate":  util.FormatDate,
	"orderLabel":  util.OrderLabel,
	"colorOutput": util.ColorOutput,
	"colorStatus": util.ColorStatus,
}

func renderTemplate(out io.Writer, templateName string, value any) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}

	t, err := template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl))
	if err != nil {
		return err
	}

	return t.Execute(out, value)
}
