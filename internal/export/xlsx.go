package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"worktrack/internal/core"
)

const xlsxSheet = "Expenses"

// WriteXLSX writes the expense report as an Excel workbook.
func WriteXLSX(w io.Writer, expenses []core.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range expenseHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}

	for idx, e := range expenses {
		row := idx + 2
		values := []any{
			e.Employee,
			e.Date.String(),
			e.Category,
			e.Description,
			e.Amount.Float64(),
			string(e.Status),
		}
		for i, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+i, row)
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
