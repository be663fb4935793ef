package storage

import (
	"context"

	"github.com/Takumouse/sales-dashboard2/internal/logger"
)

type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return "preference not found: " + e.Key
}

// ThemeKey is the well-known key of the light/dark display preference.
const ThemeKey = "theme"

// Preferences persists display preferences as string key/value pairs.
type Preferences interface {
	// Migrations
	ApplyMigrations(ctx context.Context, logger *logger.Logger) error

	// Preferences
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error

	// Resource managment
	Close() error
}
