package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/Takumouse/sales-dashboard2/internal/export"
	"github.com/Takumouse/sales-dashboard2/internal/order"
)

// Decode parses a dataset by file extension: .csv is read as CSV with a header
// row, anything else as a JSON array of orders.
func Decode(name string, reader io.Reader) ([]order.Order, error) {
	if strings.EqualFold(path.Ext(name), ".csv") {
		return decodeCSV(reader)
	}

	return decodeJSON(reader)
}

func decodeJSON(reader io.Reader) ([]order.Order, error) {
	var orders []order.Order

	if err := json.NewDecoder(reader).Decode(&orders); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	if orders == nil {
		return nil, errors.New("JSON dataset is not an array")
	}

	return orders, nil
}

// decodeCSV maps columns by header name so column order does not matter.
func decodeCSV(reader io.Reader) ([]order.Order, error) {
	r := csv.NewReader(reader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	columns := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, h := range export.Header {
		if _, ok := columns[h]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", h)
		}
	}

	orders := make([]order.Order, 0, len(records)-1)
	for line, row := range records[1:] {
		o, err := csvRowToOrder(row, columns)
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("CSV line %d: %w", line+2, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func csvRowToOrder(row []string, columns map[string]int) (order.Order, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[columns[name]])
	}

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid id: %w", err)
	}

	amount, err := strconv.ParseInt(field("amount"), 10, 64)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid amount: %w", err)
	}

	quantity, err := strconv.ParseInt(field("quantity"), 10, 64)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid quantity: %w", err)
	}

	return order.Order{
		ID:       id,
		Date:     field("date"),
		Product:  field("product"),
		Category: field("category"),
		Region:   field("region"),
		Amount:   amount,
		Quantity: quantity,
		Status:   order.Status(field("status")),
	}, nil
}
