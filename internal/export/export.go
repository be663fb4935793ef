package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Takumouse/sales-dashboard2/internal/order"
)

const base10 = 10

// Header is the column layout shared by CSV export and CSV datasets.
var Header = []string{"id", "date", "product", "category", "region", "amount", "quantity", "status"}

// CSV exports orders to CSV format
// format: id,date,product,category,region,amount,quantity,status
func CSV(writer io.Writer, orders []order.Order) error {
	w := csv.NewWriter(writer)

	// Pre-allocate records slice: header + all order records
	records := make([][]string, 0, len(orders)+1)
	records = append(records, Header)

	for _, o := range orders {
		records = append(records, orderToCSVRecord(o))
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

func orderToCSVRecord(o order.Order) []string {
	return []string{
		strconv.FormatInt(o.ID, base10),
		o.Date,
		o.Product,
		o.Category,
		o.Region,
		strconv.FormatInt(o.Amount, base10),
		strconv.FormatInt(o.Quantity, base10),
		string(o.Status),
	}
}
