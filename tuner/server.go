package tuner

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server wires the handler, the WebSocket hub and the override store's
// file watcher into one HTTP server.
type Server struct {
	httpServer *http.Server
	handler    *Handler
	hub        *Hub
}

// NewServer builds the tuner server. The handler's store is watched so
// external edits to the overrides file also reach connected clients.
func NewServer(handler *Handler, hub *Hub, port int) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /api/v1/ws", hub.ServeWS)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		handler: handler,
		hub:     hub,
	}
}

// Start begins serving. It also starts watching the overrides file;
// watch failures are logged, not fatal, since the API still works.
func (s *Server) Start() error {
	if err := s.handler.store.Watch(func() { s.hub.IconChanged("") }); err != nil {
		log.Printf("warning: override watch unavailable: %v", err)
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the watcher and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.handler.store.Close()
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
