package export

import (
	"fmt"
	"io"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"worktrack/internal/core"
)

// WritePDF writes the expense report as a PDF with a summary block
// followed by the full listing.
func WritePDF(w io.Writer, expenses []core.Expense, summary core.ExpenseSummary) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Expense Report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
	})

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text("Summary", props.Text{
				Top:   2,
				Style: consts.Bold,
				Size:  14,
			})
		})
	})

	summaryLines := []string{
		fmt.Sprintf("Total: %s", summary.Total),
		fmt.Sprintf("Pending: %s", summary.Pending),
		fmt.Sprintf("Approved: %s", summary.Approved),
		fmt.Sprintf("Rejected: %s", summary.Rejected),
	}
	for _, line := range summaryLines {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(line, props.Text{Size: 11})
			})
		})
	}

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("Expenses", props.Text{
				Top:   5,
				Style: consts.Bold,
				Size:  14,
			})
		})
	})

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, expenseRow(e))
	}

	m.TableList(expenseHeader, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{2, 2, 2, 3, 1, 2},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{2, 2, 2, 3, 1, 2},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	buf, err := m.Output()
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
