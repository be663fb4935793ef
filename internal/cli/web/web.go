package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/pflag"

	"github.com/Takumouse/sales-dashboard2/internal/cli"
	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/router"
)

const shutdownTimeout = 5 * time.Second

type webCommand struct {
	port    string
	timeout time.Duration
}

func NewCommand() cli.Command {
	return &webCommand{}
}

func (c *webCommand) Description() string {
	return "Web interface"
}

func (c *webCommand) SetFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.port, "port", "p", "", "port to listen on (overrides server.port)")
	fs.DurationVarP(&c.timeout, "timeout", "t", 0, "read header timeout (overrides server.read_header_timeout)")
}

func (c *webCommand) Run(ctx context.Context, app *cli.App) error {
	if c.port != "" {
		app.Config.Server.Port = c.port
	}
	if c.timeout > 0 {
		app.Config.Server.ReadHeaderTimeout = c.timeout
	}

	return Run(ctx, app)
}

// NewServer builds the HTTP server for app without starting it.
func NewServer(app *cli.App) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", app.Config.Server.Port),
		ReadHeaderTimeout: app.Config.Server.ReadHeaderTimeout,
		Handler:           router.New(app.Controller, app.Logger, app.Config.Server.TrustedOrigins),
	}
}

// Run serves the dashboard until ctx is cancelled.
func Run(ctx context.Context, app *cli.App) error {
	logger := app.Logger.Component("web")

	app.Controller.Subscribe(func(snapshot dashboard.Snapshot) {
		logger.Debug("Dashboard updated",
			"page", snapshot.Page.Current,
			"pages", snapshot.Page.Count,
			"orders", snapshot.Page.Total,
			"sort", snapshot.State.Sort.String(),
			"view", snapshot.State.Mode,
		)
	})

	server := NewServer(app)

	serveErr := make(chan error, 1)
	logger.Info(fmt.Sprintf("Open dashboard on http://localhost:%s", app.Config.Server.Port),
		"orders", app.Store.Len(),
		"dataset", app.Origin,
	)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
