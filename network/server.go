// Package network exposes a read-only HTTP view of the running game so a
// second terminal or a script can watch without touching the input loop.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// ErrNoGame is reported by /state before the first game starts
var ErrNoGame = errors.New("no game running")

// Source supplies the data served; status.Registry implements it
type Source interface {
	Latest() (engine.TickResult, bool)
	Stats() map[string]any
}

// StateResponse is the /state payload
type StateResponse struct {
	engine.TickResult
	Rows []string `json:"rows"`
}

// Server is the spectator HTTP API
type Server struct {
	config *Config
	source Source
	glyphs render.Glyphs
	router *gin.Engine

	mu       sync.Mutex
	http     *http.Server
	listener net.Listener
	done     chan error
}

// NewServer builds the router; call Start to listen
func NewServer(cfg *Config, source Source, glyphs render.Glyphs) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config: cfg,
		source: source,
		glyphs: glyphs,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery())
	s.router.GET("/ping", s.handlePing)
	s.router.GET("/state", s.handleState)
	s.router.GET("/stats", s.handleStats)
	return s
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the configured address and serves in the background
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.http != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", s.config.Address, err)
	}

	s.listener = ln
	s.http = &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.done = make(chan error, 1)

	srv, done := s.http, s.done
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()

	log.Printf("network: spectator API on http://%s", ln.Addr())
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully within ShutdownTimeout
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.http, s.done
	s.http, s.listener = nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	return <-done
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleState(c *gin.Context) {
	res, ok := s.source.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrNoGame.Error()})
		return
	}
	c.JSON(http.StatusOK, StateResponse{
		TickResult: res,
		Rows:       render.Lines(res.Grid, s.glyphs),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.source.Stats())
}
