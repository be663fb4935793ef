// Package file stores preferences in a single JSON object on disk.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/Takumouse/sales-dashboard2/internal/logger"
	"github.com/Takumouse/sales-dashboard2/internal/storage"
)

const filePerm = 0o600

type fileStorage struct {
	path string
	mu   sync.Mutex
}

func New(path string) (storage.Preferences, error) {
	if path == "" {
		return nil, errors.New("preferences file path cannot be empty")
	}

	return &fileStorage{path: path}, nil
}

// ApplyMigrations makes sure the parent directory exists. The file itself is
// created on the first write.
func (s *fileStorage) ApplyMigrations(_ context.Context, logger *logger.Logger) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	logger.Debug("Preferences file ready", "path", s.path)

	return nil
}

func (s *fileStorage) GetPreference(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", &storage.NotFoundError{Key: key}
	}

	return value, nil
}

func (s *fileStorage) SetPreference(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}

	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	data = append(data, '\n')

	if err = atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	// atomic.WriteFile doesn't set permissions for new files
	return os.Chmod(s.path, filePerm)
}

func (s *fileStorage) Close() error {
	return nil
}

// read loads the preferences object. Comments and trailing commas are
// accepted so the file can be edited by hand.
func (s *fileStorage) read() (map[string]string, error) {
	values := map[string]string{}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid preferences file %s: %w", s.path, err)
	}

	if err = json.Unmarshal(standardized, &values); err != nil {
		return nil, fmt.Errorf("invalid preferences file %s: %w", s.path, err)
	}

	return values, nil
}
