package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"tasklite/internal/model"
	"tasklite/internal/task"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "tasklite",
		"endpoints": map[string]string{
			"GET /":             "this description",
			"GET /health":       "service health",
			"GET /tasks":        "list all tasks",
			"POST /tasks":       "create a task",
			"GET /tasks/:id":    "fetch a task",
			"PUT /tasks/:id":    "update a task",
			"DELETE /tasks/:id": "delete a task",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": model.Now(),
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filters, err := parseListFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := s.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load tasks")
		return
	}

	writeJSON(w, http.StatusOK, filterTasks(tasks, filters))
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := task.ParseCreateInput(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.service.Create(r.Context(), in)
	if err != nil {
		s.log.Error().Err(err).Msg("create task")
		writeError(w, http.StatusInternalServerError, "Failed to save task")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}

	found, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.taskError(w, err, "Failed to load task")
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := task.ParseUpdateInput(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.service.Update(r.Context(), id, in)
	if err != nil {
		s.taskError(w, err, "Failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.taskError(w, err, "Failed to delete task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task deleted successfully",
		"id":      id,
	})
}

// taskID parses the path id. Identifier validation happens before anything
// else, including body validation and lookup.
func (s *Server) taskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, task.ErrInvalidID.Error())
		return 0, false
	}
	return id, true
}

// taskError maps service errors: not-found keeps the requested id in the
// body, anything else is a persistence failure with the operation's fixed
// message.
func (s *Server) taskError(w http.ResponseWriter, err error, persistMsg string) {
	var nf *task.NotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": "Task not found",
			"id":    nf.ID,
		})
		return
	}
	s.log.Error().Err(err).Msg("task operation failed")
	writeError(w, http.StatusInternalServerError, persistMsg)
}
