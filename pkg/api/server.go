package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

// Server owns the HTTP listener for the lifetime of the process
type Server struct {
	srv  *http.Server
	ln   net.Listener
	errs chan error
}

// NewServer creates a server for handler on addr. It does not listen until
// Start is called.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 15 * time.Second,
			// No WriteTimeout: /run-script holds the response open for the
			// whole pass, about one second per link.
			IdleTimeout: 60 * time.Second,
		},
		errs: make(chan error, 1),
	}
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln

	go func() {
		log.Printf("API server starting on %s", ln.Addr())
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errs <- err
		}
		close(s.errs)
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Errors yields a serve failure, if any, and is closed when serving stops.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Stop gracefully shuts the server down, waiting for in-flight runs until
// ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
