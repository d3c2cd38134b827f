package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/prasetyadi/pkl-placement/internal/handler"
)

type Server struct {
	server *http.Server
	logger *zap.Logger
}

func NewServer(h *handler.Handler, addr string, logger *zap.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: NewRouter(h, logger),
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
