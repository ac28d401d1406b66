// Package http exposes the stores over a JSON API.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"worktrack/internal/cache"
	"worktrack/internal/middleware/security"
	"worktrack/internal/middleware/trace"
	"worktrack/internal/store"
)

type Server struct {
	httpServer *http.Server

	expenses *store.ExpenseStore
	projects *store.ProjectStore

	dashboard *cache.LRU[dashboardPayload]
}

// NewServer configures routes and middleware, returning a ready-to-run
// server.
func NewServer(addr string, expenses *store.ExpenseStore, projects *store.ProjectStore, cacheTTL time.Duration) *Server {
	s := &Server{
		expenses:  expenses,
		projects:  projects,
		dashboard: cache.NewLRU[dashboardPayload](4, cacheTTL),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("PATCH /api/expenses/{id}", s.handleUpdateExpenseStatus)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)
	mux.HandleFunc("GET /api/expenses/summary", s.handleExpenseSummary)
	mux.HandleFunc("GET /api/expenses/categories", handleExpenseCategories)
	mux.HandleFunc("GET /api/expenses/export", s.handleExportExpenses)

	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("POST /api/projects", s.handleCreateProject)
	mux.HandleFunc("PATCH /api/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", s.handleDeleteProject)
	mux.HandleFunc("GET /api/projects/summary", s.handleProjectSummary)
	mux.HandleFunc("GET /api/projects/{id}/tasks", s.handleProjectTasks)
	mux.HandleFunc("GET /api/projects/{id}/time-entries", s.handleProjectTimeEntries)

	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("GET /api/tasks/summary", s.handleTaskSummary)
	mux.HandleFunc("GET /api/tasks/{id}/time-entries", s.handleTaskTimeEntries)

	mux.HandleFunc("POST /api/time-entries", s.handleCreateTimeEntry)
	mux.HandleFunc("PATCH /api/time-entries/{id}", s.handleUpdateTimeEntry)
	mux.HandleFunc("DELETE /api/time-entries/{id}", s.handleDeleteTimeEntry)

	mux.HandleFunc("GET /api/team-members", s.handleListTeamMembers)
	mux.HandleFunc("POST /api/team-members", s.handleCreateTeamMember)
	mux.HandleFunc("PATCH /api/team-members/{id}", s.handleUpdateTeamMember)
	mux.HandleFunc("DELETE /api/team-members/{id}", s.handleDeleteTeamMember)

	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	traceMW := trace.NewMiddleware()
	secMW := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	handler := traceMW.Middleware(secMW.Middleware(mux))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	slog.InfoContext(ctx, "Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// invalidateDashboard drops cached dashboard payloads after a mutation.
func (s *Server) invalidateDashboard() {
	s.dashboard.Clear()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports 503 until both stores finished hydrating.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	select {
	case <-s.expenses.Ready():
	default:
		http.Error(w, "hydrating", http.StatusServiceUnavailable)
		return
	}
	select {
	case <-s.projects.Ready():
	default:
		http.Error(w, "hydrating", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
