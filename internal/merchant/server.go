// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/toeirei/dropindemo/internal/logging"
)

// DefaultAmount is charged for every demo transaction.
const DefaultAmount = "1.00"

// ServerConfig configures the demo merchant server.
type ServerConfig struct {
	Addr        string
	Environment string
	Amount      string
}

// Server runs the merchant API over HTTP.
type Server struct {
	config ServerConfig
	store  *Store
	srv    *http.Server
	wg     sync.WaitGroup

	// Addr is the bound listen address, valid after Start.
	Addr string
}

func NewServer(config ServerConfig, store *Store) *Server {
	return &Server{config: config, store: store}
}

// Router builds the HTTP handler without binding a port.
func (s *Server) Router() chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(requestLogger)

	NewAPI(s.store, s.config.Environment, s.config.Amount).AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return router
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}
	s.Addr = l.Addr().String()
	s.srv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		logging.Infof("merchant server listening on %s", s.Addr)
		if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Errorf("merchant server: %v", err)
		}
		logging.Infof("merchant server stopped")
	}()
	return nil
}

// Shutdown stops accepting requests and waits for the serve loop to exit.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	err := s.srv.Shutdown(ctx)
	s.wg.Wait()
	return err
}

// requestLogger logs one line per request once the handler returns.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logging.L.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"request_id", chimiddleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}
