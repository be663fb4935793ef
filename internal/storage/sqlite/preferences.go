package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Takumouse/sales-dashboard2/internal/storage"
)

func (s *sqliteStorage) GetPreference(ctx context.Context, key string) (string, error) {
	var value string

	row := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &storage.NotFoundError{Key: key}
		}
		return "", err
	}

	return value, nil
}

func (s *sqliteStorage) SetPreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	return err
}
