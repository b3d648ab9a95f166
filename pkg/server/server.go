package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/store"
)

// Server is the HTTP service. Create it with New.
type Server struct {
	cfg    Config
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router

	mu     sync.Mutex
	scenes map[string]*entry
}

// entry holds the live manager of one scene. mu serialises all access to m.
type entry struct {
	mu sync.Mutex
	m  *manager.Manager
}

// New creates a server over st. A nil runner renders without caching; a
// nil logger discards.
func New(cfg Config, st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{
		cfg:    cfg.withDefaults(),
		store:  st,
		runner: runner,
		logger: logger,
		scenes: make(map[string]*entry),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/scenes", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/neighbors/{token}/{dir}", s.handleNeighbor)
			r.Get("/hit", s.handleHit)
			r.Post("/keys", s.handleKeys)
			r.Post("/mouse", s.handleMouse)
			r.Get("/render", s.handleRender)
		})
	})
	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully. Expired scenes are pruned periodically while running.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ticker := time.NewTicker(janitorInterval(s.cfg.TTL))
	defer ticker.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		case <-ticker.C:
			s.prune(ctx)
		case <-ctx.Done():
			s.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
}

func janitorInterval(ttl time.Duration) time.Duration {
	if d := ttl / 2; d >= time.Second {
		return d
	}
	return time.Second
}

// prune drops expired records and the managers of scenes whose record is
// gone.
func (s *Server) prune(ctx context.Context) {
	if err := s.store.Cleanup(ctx); err != nil {
		s.logger.Warn("store cleanup failed", "error", err)
	}

	s.mu.Lock()
	ids := make([]string, 0, len(s.scenes))
	for id := range s.scenes {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		rec, err := s.store.Get(ctx, id)
		if err == nil && rec == nil {
			s.forget(id)
		}
	}
}

// acquire returns the locked entry for id, creating it if needed.
func (s *Server) acquire(id string) *entry {
	s.mu.Lock()
	e, ok := s.scenes[id]
	if !ok {
		e = &entry{}
		s.scenes[id] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	return e
}

func (s *Server) remember(id string, m *manager.Manager) {
	s.mu.Lock()
	s.scenes[id] = &entry{m: m}
	s.mu.Unlock()
}

func (s *Server) forget(id string) {
	s.mu.Lock()
	delete(s.scenes, id)
	s.mu.Unlock()
}

// Scenes returns the number of scenes tracked by this instance.
func (s *Server) Scenes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scenes)
}
