package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Takumouse/sales-dashboard2/internal/logger"
	"github.com/Takumouse/sales-dashboard2/internal/order"
)

//go:embed fallback.json
var fallbackData []byte

// Origin tells where the loaded orders came from.
type Origin string

const (
	OriginSource   Origin = "source"
	OriginFallback Origin = "fallback"
)

var client = &http.Client{}

// maxDatasetSize caps how much of a remote response is read.
var maxDatasetSize int64 = 32 << 20

// Load reads the orders at source once. http:// and https:// sources are
// fetched with ctx, everything else is read from disk.
func Load(ctx context.Context, source string) ([]order.Order, error) {
	if isRemote(source) {
		return fetch(ctx, source)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return Decode(source, file)
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetch(ctx context.Context, url string) ([]order.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("dataset request returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetSize+1))
	if err != nil {
		return nil, fmt.Errorf("read dataset response: %w", err)
	}
	if int64(len(body)) > maxDatasetSize {
		return nil, fmt.Errorf("dataset response exceeds %d bytes", maxDatasetSize)
	}

	// query strings must not hide the .csv extension
	name := url
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}

	return Decode(name, bytes.NewReader(body))
}

// Fallback returns the embedded sample dataset.
func Fallback() []order.Order {
	orders, err := decodeJSON(bytes.NewReader(fallbackData))
	if err != nil {
		panic(fmt.Sprintf("embedded fallback dataset is invalid: %v", err))
	}

	return orders
}

// LoadStore loads source into a Store. Any failure, including invalid or
// duplicate records, is logged and answered with the embedded sample.
func LoadStore(ctx context.Context, source string, logger *logger.Logger) (*order.Store, Origin) {
	orders, err := Load(ctx, source)
	if err == nil {
		var store *order.Store
		store, err = order.NewStore(orders)
		if err == nil {
			logger.Info("Dataset loaded", "source", source, "orders", store.Len())
			return store, OriginSource
		}
	}

	logger.Warn("Failed to load dataset, using fallback data", "source", source, "error", err)

	store, err := order.NewStore(Fallback())
	if err != nil {
		panic(fmt.Sprintf("embedded fallback dataset is invalid: %v", err))
	}

	return store, OriginFallback
}
