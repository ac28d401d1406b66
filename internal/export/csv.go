// Package export serializes store contents into downloadable report
// formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"worktrack/internal/core"
)

var expenseHeader = []string{"Employee", "Date", "Category", "Description", "Amount", "Status"}

// WriteCSV writes the expense report as CSV. A UTF-8 BOM is emitted
// first so spreadsheet applications detect the encoding.
func WriteCSV(w io.Writer, expenses []core.Expense) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(expenseHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range expenses {
		if err := cw.Write(expenseRow(e)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func expenseRow(e core.Expense) []string {
	return []string{
		e.Employee,
		e.Date.String(),
		e.Category,
		e.Description,
		e.Amount.String(),
		string(e.Status),
	}
}
