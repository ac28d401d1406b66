package http

import (
	"net/http"

	"worktrack/internal/core"
	"worktrack/internal/store"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tasks := s.projects.FilteredTasks(q.Get("status"), q.Get("priority"), q.Get("assignedTo"))
	writeJSON(w, r, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req core.Task
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	if req.Status == "" {
		req.Status = core.TaskTodo
	}
	if req.Priority == "" {
		req.Priority = core.PriorityMedium
	}

	created, err := s.projects.AddTask(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch store.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	updated, err := s.projects.UpdateTask(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	s.invalidateDashboard()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTaskSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.projects.TaskSummary())
}

func (s *Server) handleTaskTimeEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.projects.TaskTimeEntries(r.PathValue("id")))
}

func (s *Server) handleCreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req core.TimeEntry
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	created, err := s.projects.AddTimeEntry(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var patch store.TimeEntryPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	updated, err := s.projects.UpdateTimeEntry(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	s.invalidateDashboard()
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.DeleteTimeEntry(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	s.invalidateDashboard()
	w.WriteHeader(http.StatusNoContent)
}
