package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/Takumouse/sales-dashboard2/internal/logger"
	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/storage"
)

// Controller owns the dashboard state. Commands are applied one at a time and
// every accepted command produces a new Snapshot for the listeners.
type Controller struct {
	mu        sync.Mutex
	store     *order.Store
	prefs     storage.Preferences
	logger    *logger.Logger
	state     State
	snapshot  Snapshot
	listeners []func(Snapshot)
}

// New builds a controller over store. The theme preference is read once from
// prefs, which may be nil when nothing is persisted.
func New(ctx context.Context, store *order.Store, prefs storage.Preferences, logger *logger.Logger, pageSize int) *Controller {
	c := &Controller{
		store:  store,
		prefs:  prefs,
		logger: logger.Component("dashboard"),
		state:  DefaultState(pageSize),
	}

	c.state.Theme = c.loadTheme(ctx)
	c.snapshot = Compute(store, c.state)

	return c
}

func (c *Controller) loadTheme(ctx context.Context) Theme {
	if c.prefs == nil {
		return ThemeLight
	}

	value, err := c.prefs.GetPreference(ctx, storage.ThemeKey)
	if err != nil {
		var notFound *storage.NotFoundError
		if !errors.As(err, &notFound) {
			c.logger.Warn("Failed to read theme preference", "error", err)
		}
		return ThemeLight
	}

	return ParseTheme(value)
}

func (c *Controller) Store() *order.Store {
	return c.store
}

// Snapshot returns the latest computed view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot
}

// Subscribe registers fn to receive every new snapshot. Listeners run while
// the controller is locked and must not dispatch.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, fn)
}

// Dispatch applies cmd and returns the resulting snapshot. An invalid command
// returns ErrInvalidCommand and the current snapshot unchanged.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cmd == nil {
		return c.snapshot, ErrInvalidCommand
	}

	state, err := Reduce(c.state, cmd, len(c.snapshot.Working))
	if err != nil {
		c.logger.Debug("Rejected command", "type", cmd.Type(), "error", err)
		return c.snapshot, err
	}

	c.logger.Debug("Dispatching command", "type", cmd.Type())

	if state.Theme != c.state.Theme {
		c.saveTheme(ctx, state.Theme)
	}

	c.state = state
	c.snapshot = Compute(c.store, state)

	for _, listener := range c.listeners {
		listener(c.snapshot)
	}

	return c.snapshot, nil
}

func (c *Controller) saveTheme(ctx context.Context, theme Theme) {
	if c.prefs == nil {
		return
	}

	if err := c.prefs.SetPreference(ctx, storage.ThemeKey, string(theme)); err != nil {
		c.logger.Warn("Failed to persist theme preference", "theme", theme, "error", err)
	}
}
