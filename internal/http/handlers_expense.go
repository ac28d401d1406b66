package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"worktrack/internal/core"
	"worktrack/internal/export"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expenses := s.expenses.Filtered(q.Get("search"), q.Get("category"), q.Get("status"))
	writeJSON(w, r, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req core.Expense
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	if req.Status == "" {
		req.Status = core.StatusPending
	}
	if !core.ValidExpenseStatus(req.Status) {
		writeBadRequest(w, r, fmt.Errorf("invalid status %q", req.Status))
		return
	}

	created, err := s.expenses.AddExpense(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	slog.InfoContext(r.Context(), "Expense created",
		"expense_id", created.ID,
		"amount_cents", created.Amount.Cents,
		"category", created.Category,
		"component", "expense_handler")

	writeJSON(w, r, http.StatusCreated, created)
}

type updateExpenseRequest struct {
	Status core.ExpenseStatus `json:"status"`
}

func (s *Server) handleUpdateExpenseStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	if !core.ValidExpenseStatus(req.Status) {
		writeBadRequest(w, r, fmt.Errorf("invalid status %q", req.Status))
		return
	}

	updated, err := s.expenses.UpdateExpenseStatus(r.Context(), id, req.Status)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	s.invalidateDashboard()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.expenses.Summary())
}

func handleExpenseCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, core.ExpenseCategories)
}

// handleExportExpenses serves the filtered expense listing as a
// downloadable report. Supported formats: csv, xlsx, pdf, html.
func (s *Server) handleExportExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expenses := s.expenses.Filtered(q.Get("search"), q.Get("category"), q.Get("status"))
	summary := s.expenses.Summary()

	format := q.Get("format")
	if format == "" {
		format = "csv"
	}
	stamp := time.Now().Format("20060102")

	var err error
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "expenses_"+stamp+".csv"))
		err = export.WriteCSV(w, expenses)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "expenses_"+stamp+".xlsx"))
		err = export.WriteXLSX(w, expenses)
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "expenses_"+stamp+".pdf"))
		err = export.WritePDF(w, expenses, summary)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = export.WriteHTML(w, expenses, summary, core.Today())
	default:
		writeBadRequest(w, r, fmt.Errorf("unsupported format %q", format))
		return
	}

	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed",
			"error", err,
			"format", format,
			"component", "expense_handler")
	}
}
