package http

import (
	"net/http"

	"worktrack/internal/core"
	"worktrack/internal/store"
)

func (s *Server) handleListTeamMembers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.projects.TeamMembers())
}

func (s *Server) handleCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req core.TeamMember
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	created, err := s.projects.AddTeamMember(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var patch store.TeamMemberPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	updated, err := s.projects.UpdateTeamMember(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.DeleteTeamMember(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
