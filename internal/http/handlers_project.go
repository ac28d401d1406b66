package http

import (
	"log/slog"
	"net/http"

	"worktrack/internal/core"
	"worktrack/internal/store"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	projects := s.projects.FilteredProjects(q.Get("status"), q.Get("client"))
	writeJSON(w, r, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req core.Project
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	if req.Status == "" {
		req.Status = core.ProjectPlanning
	}

	created, err := s.projects.AddProject(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	slog.InfoContext(r.Context(), "Project created",
		"project_id", created.ID,
		"name", created.Name,
		"component", "project_handler")

	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch store.ProjectPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	updated, err := s.projects.UpdateProject(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	s.invalidateDashboard()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProjectSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.projects.ProjectSummary())
}

func (s *Server) handleProjectTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.projects.ProjectTasks(r.PathValue("id")))
}

func (s *Server) handleProjectTimeEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.projects.ProjectTimeEntries(r.PathValue("id")))
}
