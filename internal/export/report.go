package export

import (
	"fmt"
	"html/template"
	"io"

	"worktrack/internal/core"
)

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Expense Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #111; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; font-size: 0.85rem; }
th { background: #f0f0f0; }
.summary { display: flex; gap: 2rem; margin-top: 1rem; }
.summary div { font-size: 0.9rem; }
.amount { text-align: right; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Expense Report {{.GeneratedAt}}</h1>
<div class="summary">
<div>Total: {{.Summary.Total}}</div>
<div>Pending: {{.Summary.Pending}}</div>
<div>Approved: {{.Summary.Approved}}</div>
<div>Rejected: {{.Summary.Rejected}}</div>
</div>
<table>
<thead>
<tr><th>Employee</th><th>Date</th><th>Category</th><th>Description</th><th>Amount</th><th>Status</th></tr>
</thead>
<tbody>
{{range .Expenses}}<tr>
<td>{{.Employee}}</td>
<td>{{.Date}}</td>
<td>{{.Category}}</td>
<td>{{.Description}}</td>
<td class="amount">{{.Amount}}</td>
<td>{{.Status}}</td>
</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type reportData struct {
	GeneratedAt string
	Summary     core.ExpenseSummary
	Expenses    []core.Expense
}

// WriteHTML writes the expense report as a printable HTML page.
func WriteHTML(w io.Writer, expenses []core.Expense, summary core.ExpenseSummary, generatedAt core.Date) error {
	data := reportData{
		GeneratedAt: generatedAt.String(),
		Summary:     summary,
		Expenses:    expenses,
	}
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
