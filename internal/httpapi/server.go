package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"tasklite/internal/task"
)

type Server struct {
	service *task.Service
	log     zerolog.Logger
	mux     *http.ServeMux
}

func NewServer(service *task.Service, log zerolog.Logger) *Server {
	srv := &Server{
		service: service,
		log:     log,
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /{$}", srv.handleIndex)
	srv.mux.HandleFunc("GET /health", srv.handleHealth)

	srv.mux.HandleFunc("GET /tasks", srv.handleListTasks)
	srv.mux.HandleFunc("POST /tasks", srv.handleCreateTask)

	srv.mux.HandleFunc("GET /tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PUT /tasks/{id}", srv.handleUpdateTask)
	srv.mux.HandleFunc("DELETE /tasks/{id}", srv.handleDeleteTask)

	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withMiddleware(s.mux).ServeHTTP(w, r)
}
