package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (s *Service) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := s.departments.Departments(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list departments")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, departments)
}

func (s *Service) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	departmentID, err := s.departments.CreateDepartment(r.Context(), payload.Name)
	if err != nil {
		s.logger.WithError(err).Error("failed to create department")
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      departmentID,
	})
}
