package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

type createTaskRequest struct {
	Text string `json:"text"`
}

type updateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.List(r.Context())
	if err != nil {
		s.serveError(w, r, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serveError(w, r, "create", err)
		return
	}

	task, err := s.service.Create(r.Context(), req.Text)
	if err != nil {
		s.serveError(w, r, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.serveError(w, r, "update", err)
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serveError(w, r, "update", err)
		return
	}

	task, err := s.service.Update(r.Context(), id, req.Text, req.Completed)
	if err != nil {
		s.serveError(w, r, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.serveError(w, r, "delete", err)
		return
	}

	removed, err := s.service.Delete(r.Context(), id)
	if err != nil {
		s.serveError(w, r, "delete", err)
		return
	}
	if !removed {
		// the store treats this as a no-op; the API reports it
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id must be a positive integer", common.ErrValidation)
	}
	return id, nil
}

// serveError maps the error taxonomy to HTTP statuses: validation failures
// to 400, missing records to 404, everything else to 500 with the detail
// kept server-side.
func (s *Server) serveError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "task not found")
	default:
		s.logger.Error(r.Context(), "storage failure", "op", op, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
