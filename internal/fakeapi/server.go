package fakeapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
)

// Server hosts the sandbox on a single port. The gin engine is wrapped
// in an h2c handler so HTTP/2 cleartext clients work too.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	store      *store
	log        *logger.Logger

	// addr is the bound listen address, set by Start. For Port 0 this
	// is where the kernel-chosen port shows up.
	addr string
}

// New builds the sandbox server. Call cfg.ApplyDefaults first if the
// config comes from user input; a zero Port binds an ephemeral port.
func New(cfg Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("fakeapi")

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(recovery(log), requestID(), requestLogger(log))

	s := &Server{
		engine: engine,
		store:  newStore(),
		log:    log,
	}
	s.registerRoutes()

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      h2c.NewHandler(engine, h2s),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}
	return s
}

// Start binds the port and begins serving. It returns once the listener
// is bound so the caller knows the address is ready; serving continues
// in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("fakeapi: binding %s: %w", s.httpServer.Addr, err)
	}
	s.addr = listener.Addr().String()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("server error", logger.ErrorFields("serve", err))
		}
	}()

	s.log.Info("sandbox listening", logger.Fields(
		"addr", s.addr,
		"posts", len(s.store.Posts),
		"users", len(s.store.Users),
	))
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("fakeapi: shutdown: %w", err)
	}
	s.log.Info("sandbox stopped")
	return nil
}

// Addr returns the bound listen address. Valid after Start.
func (s *Server) Addr() string {
	return s.addr
}

// BaseURL returns the sandbox root URL. Valid after Start.
func (s *Server) BaseURL() string {
	return "http://" + s.addr
}
