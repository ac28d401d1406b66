package http

import (
	"net/http"

	"worktrack/internal/core"
)

const dashboardCacheKey = "dashboard"

// dashboardPayload bundles every summary the dashboard needs into a
// single response.
type dashboardPayload struct {
	Expenses core.ExpenseSummary `json:"expenses"`
	Projects core.ProjectSummary `json:"projects"`
	Tasks    core.TaskSummary    `json:"tasks"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if payload, ok := s.dashboard.Get(dashboardCacheKey); ok {
		writeJSON(w, r, http.StatusOK, payload)
		return
	}

	payload := dashboardPayload{
		Expenses: s.expenses.Summary(),
		Projects: s.projects.ProjectSummary(),
		Tasks:    s.projects.TaskSummary(),
	}
	s.dashboard.Set(dashboardCacheKey, payload)
	writeJSON(w, r, http.StatusOK, payload)
}
