package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the web console server listening on cfg.HTTPAddress.
func NewServer(handler http.Handler, cfg config.ClientWeb, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.HTTPAddress, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	<-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
