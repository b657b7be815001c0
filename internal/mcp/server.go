package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/config"
	"github.com/honeycarbs/careerscout/internal/mcp/tools"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// Server wraps an MCP SDK server with an HTTP listener.
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs the MCP HTTP server and registers every tool the
// given resources can support.
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "careerscout",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	opts := []tools.Option{
		tools.WithCareerResearch(res.Research),
		tools.WithJobCollector(res.Store),
		tools.WithTrendAnalyzer(res.Store),
		tools.WithJobMatcher(res.Store),
		tools.WithCoachTools(),
	}
	if res.Collector != nil {
		opts = append(opts, tools.WithJobImport(res.Collector))
	}
	if res.Sheets != nil {
		opts = append(opts, tools.WithSheetsExport(res.Store, res.Sheets))
	}

	tools.Register(mcpServer, log.Named("tools"), opts...)

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		config: cfg,
		srv:    httpSrv,
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
