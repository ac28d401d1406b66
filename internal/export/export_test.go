package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"worktrack/internal/core"
)

func sampleExpenses() []core.Expense {
	return []core.Expense{
		{
			ID:          "1",
			Amount:      core.Money{Cents: 12550},
			Category:    "Travel",
			Description: "Taxi to client meeting",
			Date:        core.NewDate(2024, 1, 15),
			Employee:    "John Smith",
			Status:      core.StatusApproved,
		},
		{
			ID:          "2",
			Amount:      core.Money{Cents: 4500},
			Category:    "Meals & Entertainment",
			Description: "Team lunch",
			Date:        core.NewDate(2024, 1, 14),
			Employee:    "Sarah Johnson",
			Status:      core.StatusPending,
		},
	}
}

func sampleSummary() core.ExpenseSummary {
	return core.ExpenseSummary{
		Total:    core.Money{Cents: 17050},
		Pending:  core.Money{Cents: 4500},
		Approved: core.Money{Cents: 12550},
		ByCategory: map[string]core.Money{
			"Travel":                {Cents: 12550},
			"Meals & Entertainment": {Cents: 4500},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleExpenses()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("%d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "Employee,Date,Category,Description,Amount,Status" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "John Smith,2024-01-15,Travel,Taxi to client meeting,125.50,approved" {
		t.Errorf("row = %q", lines[1])
	}
	if !strings.Contains(lines[2], `"Meals & Entertainment"`) && !strings.Contains(lines[2], "Meals & Entertainment") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String()[3:], "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("%d lines, want header only", len(lines))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleExpenses()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("%d rows, want header plus 2", len(rows))
	}
	if rows[0][0] != "Employee" || rows[0][5] != "Status" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "John Smith" || rows[1][2] != "Travel" {
		t.Errorf("first row = %v", rows[1])
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleExpenses(), sampleSummary()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, sampleExpenses(), sampleSummary(), core.NewDate(2024, 2, 1))
	if err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<title>Expense Report</title>",
		"2024-02-01",
		"Taxi to client meeting",
		"125.50",
		"Total: 170.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
